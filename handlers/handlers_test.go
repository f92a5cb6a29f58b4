package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintlog/models"
	"maintlog/storage"
	"maintlog/utils"
)

const testJWTSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, storage.LogStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewWorkbookStore(filepath.Join(t.TempDir(), "logs.xlsx"), "Sheet1")
	require.NoError(t, err)

	hash, err := adminHash()
	require.NoError(t, err)

	var mu sync.Mutex
	r := gin.New()
	r.POST("/api/login", AdminLogin(hash, testJWTSecret))
	r.POST("/api/maintenance-log", SubmitMaintenanceLog(store, &mu, nil))
	r.GET("/api/maintenance-log", GetMaintenanceLogs(store))
	r.GET("/api/maintenance-log/status", CheckSubmissionStatus(store))
	r.GET("/api/maintenance-log/report", GenerateDayReport(store, "http://localhost:5000"))
	r.DELETE("/api/maintenance-log/:timestamp/:shift",
		AdminAuthMiddleware(testJWTSecret), DeleteMaintenanceLog(store))
	return r, store
}

// Hashing is slow at our bcrypt cost; compute the test hash once.
var adminHash = sync.OnceValues(func() (string, error) {
	return utils.HashPassword("let-me-in")
})

// seed appends a row directly, bypassing the policy, with a timestamp whose
// date part matches the given canonical date.
func seed(t *testing.T, store storage.LogStore, date, shift string) {
	t.Helper()
	ts := date[8:10] + "/" + date[5:7] + "/" + date[0:4] + " 08:00:00"
	row := storage.RowForLog(ts, "S. Mondal", shift, models.EquipmentStatus{Boiler: "ok"})
	require.NoError(t, store.Append(row))
}

func submitBody(date, shift string) []byte {
	req := models.LogRequest{
		Date:         date,
		Shift:        shift,
		Electrician1: "S. Mondal",
		// The client stamps the submission; its date part must match Date
		// for the row to land on the right day.
		Timestamp: date + "T08:00:00",
	}
	b, _ := json.Marshal(req)
	return b
}

func doJSON(r *gin.Engine, method, url string, body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var e models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestSubmitAcceptedAfterPreviousDayClosed(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "C")

	w := doJSON(r, http.MethodPost, "/api/maintenance-log", submitBody("2024-01-02", "A"), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "A", resp.Data.Shift)
	assert.Equal(t, "S. Mondal", resp.Data.Electrician)
	assert.Equal(t, "02/01/2024 08:00:00", resp.Data.Timestamp)
}

func TestSubmitRejectedOnEmptyHistory(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/maintenance-log", submitBody("2024-01-02", "A"), "")
	require.Equal(t, http.StatusForbidden, w.Code)

	e := decodeError(t, w)
	assert.Equal(t, "PREVIOUS_SHIFT_C_MISSING", e.Code)
	assert.Equal(t, "2024-01-01", e.RequiredDate)
	assert.Equal(t, "C", e.RequiredShift)
}

func TestSubmitDuplicateRejected(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "C")

	w := doJSON(r, http.MethodPost, "/api/maintenance-log", submitBody("2024-01-02", "A"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/maintenance-log", submitBody("2024-01-02", "A"), "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_ENTRY", decodeError(t, w).Code)
}

func TestSubmitShiftCNeedsB(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "C")
	seed(t, store, "2024-01-02", "A")

	w := doJSON(r, http.MethodPost, "/api/maintenance-log", submitBody("2024-01-02", "C"), "")
	require.Equal(t, http.StatusForbidden, w.Code)

	e := decodeError(t, w)
	assert.Equal(t, "SHIFT_B_REQUIRED", e.Code)
	assert.Equal(t, "B", e.RequiredShift)
}

func TestSubmitInvalidInput(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "C")

	// Negative reading.
	req := models.LogRequest{
		Date:         "2024-01-02",
		Shift:        "A",
		Electrician1: "S. Mondal",
	}
	req.EquipmentStatus.Boiler = "-5"
	b, _ := json.Marshal(req)
	w := doJSON(r, http.MethodPost, "/api/maintenance-log", b, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, w).Code)

	// No electricians.
	req.EquipmentStatus.Boiler = ""
	req.Electrician1 = ""
	b, _ = json.Marshal(req)
	w = doJSON(r, http.MethodPost, "/api/maintenance-log", b, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed body.
	w = doJSON(r, http.MethodPost, "/api/maintenance-log", []byte("{not json"), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLogsFilteredAndLimited(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "A")
	seed(t, store, "2024-01-01", "B")
	seed(t, store, "2024-01-01", "C")
	seed(t, store, "2024-01-02", "A")

	w := doJSON(r, http.MethodGet, "/api/maintenance-log?date=2024-01-01", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list models.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Count)

	w = doJSON(r, http.MethodGet, "/api/maintenance-log?date=2024-01-01&shift=b", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "B", list.Data[0].Shift)

	w = doJSON(r, http.MethodGet, "/api/maintenance-log?limit=2", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)
}

func TestStatusEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "C")
	seed(t, store, "2024-01-02", "A")

	w := doJSON(r, http.MethodGet, "/api/maintenance-log/status?date=2024-01-02", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var st models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.True(t, st.Success)
	assert.Equal(t, []string{"A"}, st.SubmittedShifts)
	assert.False(t, st.CanSubmit.A)
	assert.True(t, st.CanSubmit.B)
	assert.False(t, st.CanSubmit.C)
	assert.Equal(t, "2024-01-01", st.PreviousDateCheck.Date)
	assert.True(t, st.PreviousDateCheck.ShiftCSubmitted)
}

func TestStatusRequiresDate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/maintenance-log/status", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRequiresAdminToken(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "C")

	w := doJSON(r, http.MethodDelete, "/api/maintenance-log/2024-01-01/C", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/maintenance-log/2024-01-01/C", nil, "bogus")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteLog(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "C")

	token, err := utils.GenerateAdminJWT(testJWTSecret)
	require.NoError(t, err)

	w := doJSON(r, http.MethodDelete, "/api/maintenance-log/2024-01-01/c", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	logs, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, logs)

	// Second delete finds nothing.
	w = doJSON(r, http.MethodDelete, "/api/maintenance-log/2024-01-01/C", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	body, _ := json.Marshal(models.LoginRequest{Password: "wrong"})
	w := doJSON(r, http.MethodPost, "/api/login", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body, _ = json.Marshal(models.LoginRequest{Password: "let-me-in"})
	w = doJSON(r, http.MethodPost, "/api/login", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestReportEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, store, "2024-01-01", "A")
	seed(t, store, "2024-01-01", "B")

	w := doJSON(r, http.MethodGet, "/api/maintenance-log/report?date=2024-01-01", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = doJSON(r, http.MethodGet, "/api/maintenance-log/report", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
