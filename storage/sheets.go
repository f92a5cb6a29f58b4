package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2/jwt"

	"maintlog/models"
)

const sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// dataRange covers the full 16-column row layout.
const dataRange = "A:P"

// ServiceAccountCredentials is the Google service account JSON shape.
type ServiceAccountCredentials struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`
}

// SheetsStore talks to the Google Sheets v4 REST API with a service-account
// authenticated client. The client is built once here and held by the
// caller; there is no package-level instance.
type SheetsStore struct {
	spreadsheetID string
	sheetName     string
	httpClient    *http.Client
}

func NewSheetsStore(credentialsJSON []byte, spreadsheetID, sheetName string) (*SheetsStore, error) {
	var creds ServiceAccountCredentials
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil {
		return nil, fmt.Errorf("error parsing credentials: %v", err)
	}
	if creds.ClientEmail == "" || creds.PrivateKey == "" {
		return nil, fmt.Errorf("credentials missing client_email or private_key")
	}

	tokenURI := creds.TokenURI
	if tokenURI == "" {
		tokenURI = "https://oauth2.googleapis.com/token"
	}

	// Env-supplied JSON often carries escaped newlines in the PEM block.
	privateKey := strings.ReplaceAll(creds.PrivateKey, "\\n", "\n")

	config := &jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{"https://www.googleapis.com/auth/spreadsheets"},
		TokenURL:   tokenURI,
	}

	client := config.Client(context.Background())
	client.Timeout = 30 * time.Second

	return &SheetsStore{
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		httpClient:    client,
	}, nil
}

type valueRange struct {
	Values [][]string `json:"values"`
}

func (s *SheetsStore) valuesURL(rng string) string {
	return fmt.Sprintf("%s/%s/values/%s",
		sheetsBaseURL, s.spreadsheetID,
		url.PathEscape(fmt.Sprintf("%s!%s", s.sheetName, rng)))
}

func storeError(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: check GOOGLE_SPREADSHEET_ID", ErrSheetNotFound)
	case http.StatusForbidden:
		return fmt.Errorf("%w: check service account permissions", ErrPermissionDenied)
	}
	return fmt.Errorf("sheets API returned %d: %s", status, strings.TrimSpace(string(body)))
}

func (s *SheetsStore) ReadAll() ([]models.MaintenanceLog, error) {
	resp, err := s.httpClient.Get(s.valuesURL(dataRange))
	if err != nil {
		return nil, fmt.Errorf("error fetching rows: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, storeError(resp.StatusCode, body)
	}

	var vr valueRange
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("error decoding rows: %v", err)
	}

	// Row 1 is the header.
	if len(vr.Values) <= 1 {
		return nil, nil
	}
	logs := make([]models.MaintenanceLog, 0, len(vr.Values)-1)
	for i, cells := range vr.Values[1:] {
		logs = append(logs, logFromRow(cells, i+2))
	}
	return logs, nil
}

func (s *SheetsStore) Append(row []string) error {
	payload, err := json.Marshal(valueRange{Values: [][]string{row}})
	if err != nil {
		return fmt.Errorf("error encoding row: %v", err)
	}

	appendURL := s.valuesURL(dataRange) + ":append?valueInputOption=USER_ENTERED"
	resp, err := s.httpClient.Post(appendURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error appending row: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return storeError(resp.StatusCode, body)
	}
	return nil
}

func (s *SheetsStore) DeleteRow(rowIndex int) error {
	// deleteDimension takes 0-based half-open row indexes.
	req := map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"deleteDimension": map[string]interface{}{
					"range": map[string]interface{}{
						"sheetId":    0,
						"dimension":  "ROWS",
						"startIndex": rowIndex - 1,
						"endIndex":   rowIndex,
					},
				},
			},
		},
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error encoding delete request: %v", err)
	}

	batchURL := fmt.Sprintf("%s/%s:batchUpdate", sheetsBaseURL, s.spreadsheetID)
	resp, err := s.httpClient.Post(batchURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error deleting row: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return storeError(resp.StatusCode, body)
	}
	return nil
}
