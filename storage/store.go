package storage

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"maintlog/dates"
	"maintlog/models"
)

// Store-level failures the handlers translate to specific HTTP statuses.
var (
	ErrSheetNotFound    = errors.New("spreadsheet not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// LogStore is the backing-store contract: full scan, blind append, and
// physical row deletion. The store enforces no uniqueness; the policy's
// duplicate check must run immediately before every Append.
type LogStore interface {
	// ReadAll returns every log row in sheet order, header row skipped.
	// RowIndex on each log is the 1-based physical row (header is row 1).
	ReadAll() ([]models.MaintenanceLog, error)

	// Append adds one row of cells in column order A:P.
	Append(row []string) error

	// DeleteRow removes the physical row at the given 1-based index.
	DeleteRow(rowIndex int) error
}

// HeaderRow is written as row 1 when a workbook is created.
func HeaderRow() []string {
	header := []string{"timestamp", "electrician", "shift"}
	return append(header, models.EquipmentChannels...)
}

// RowForLog renders a validated submission as sheet cells in column order.
func RowForLog(timestamp, electrician, shift string, status models.EquipmentStatus) []string {
	row := []string{timestamp, electrician, shift}
	return append(row, status.Values()...)
}

// logFromRow decodes one sheet row. The log's date is derived from the
// timestamp cell; rows with unparseable timestamps keep an empty date and
// never match any canonical date.
func logFromRow(cells []string, rowIndex int) models.MaintenanceLog {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	var channels []string
	if len(cells) > 3 {
		channels = cells[3:]
	}
	return models.MaintenanceLog{
		Timestamp:       get(0),
		Electrician:     get(1),
		Shift:           get(2),
		Date:            dates.Normalize(get(0)),
		EquipmentStatus: models.EquipmentStatusFromValues(channels),
		RowIndex:        rowIndex,
	}
}

// Config is read once at startup and injected; nothing in this package
// keeps global state.
type Config struct {
	Port           string
	FrontendOrigin string

	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string

	WorkbookPath string
	BackupDir    string

	AdminPasswordHash string
	JWTSecret         string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	NotifyEmail  string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := Config{
		Port:              getenv("PORT", "5000"),
		FrontendOrigin:    getenv("FRONTEND_ORIGIN", "*"),
		SpreadsheetID:     os.Getenv("GOOGLE_SPREADSHEET_ID"),
		SheetName:         getenv("SHEET_NAME", "Sheet1"),
		CredentialsJSON:   os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		WorkbookPath:      os.Getenv("LOG_WORKBOOK"),
		BackupDir:         os.Getenv("BACKUP_DIR"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getenv("JWT_SECRET", "maintlog"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getenv("SMTP_PORT", "587"),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		NotifyEmail:       os.Getenv("NOTIFY_EMAIL"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewStore picks the backing store from configuration: a Google Sheet when
// spreadsheet credentials are configured, otherwise a local workbook file.
func NewStore(cfg Config) (LogStore, error) {
	if cfg.SpreadsheetID != "" && cfg.CredentialsJSON != "" {
		return NewSheetsStore([]byte(cfg.CredentialsJSON), cfg.SpreadsheetID, cfg.SheetName)
	}
	if cfg.WorkbookPath != "" {
		return NewWorkbookStore(cfg.WorkbookPath, cfg.SheetName)
	}
	return nil, fmt.Errorf("no store configured: set GOOGLE_SPREADSHEET_ID and GOOGLE_CREDENTIALS_JSON, or LOG_WORKBOOK")
}
