package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"maintlog/models"
)

// WorkbookStore keeps logs in a local .xlsx file. Used for local and
// single-instance deployments and by the test suites; the mutex serializes
// workbook access within the process.
type WorkbookStore struct {
	mu        sync.Mutex
	path      string
	sheetName string
}

// NewWorkbookStore opens the workbook at path, creating it with a header
// row when it does not exist yet.
func NewWorkbookStore(path, sheetName string) (*WorkbookStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f := excelize.NewFile()
		defer f.Close()

		if sheetName != "Sheet1" {
			f.SetSheetName("Sheet1", sheetName)
		}

		header := make([]interface{}, 0, 16)
		for _, h := range HeaderRow() {
			header = append(header, h)
		}
		if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
			return nil, fmt.Errorf("error writing header row: %v", err)
		}
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("error creating workbook: %v", err)
		}
	}
	return &WorkbookStore{path: path, sheetName: sheetName}, nil
}

func (w *WorkbookStore) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %v", err)
	}
	return f, nil
}

func (w *WorkbookStore) ReadAll() ([]models.MaintenanceLog, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(w.sheetName)
	if err != nil {
		return nil, fmt.Errorf("error reading rows: %v", err)
	}

	// Row 1 is the header.
	if len(rows) <= 1 {
		return nil, nil
	}
	logs := make([]models.MaintenanceLog, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		logs = append(logs, logFromRow(cells, i+2))
	}
	return logs, nil
}

func (w *WorkbookStore) Append(row []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(w.sheetName)
	if err != nil {
		return fmt.Errorf("error reading rows: %v", err)
	}

	cells := make([]interface{}, 0, len(row))
	for _, v := range row {
		cells = append(cells, v)
	}

	anchor := fmt.Sprintf("A%d", len(rows)+1)
	if err := f.SetSheetRow(w.sheetName, anchor, &cells); err != nil {
		return fmt.Errorf("error writing row: %v", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("error saving workbook: %v", err)
	}
	return nil
}

func (w *WorkbookStore) DeleteRow(rowIndex int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.RemoveRow(w.sheetName, rowIndex); err != nil {
		return fmt.Errorf("error removing row: %v", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("error saving workbook: %v", err)
	}
	return nil
}

// Backup copies the workbook into dir with a timestamped name. Run from the
// nightly cron job.
func (w *WorkbookStore) Backup(dir string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := os.ReadFile(w.path)
	if err != nil {
		return "", fmt.Errorf("error reading workbook: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating backup dir: %v", err)
	}

	name := fmt.Sprintf("maintenance-log-%s.xlsx", time.Now().Format("2006-01-02"))
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing backup: %v", err)
	}
	return dst, nil
}
