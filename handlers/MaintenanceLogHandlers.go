package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"maintlog/dates"
	"maintlog/models"
	"maintlog/policy"
	"maintlog/services"
	"maintlog/storage"
)

// rejectionStatus maps a policy reason code to its HTTP status.
func rejectionStatus(code string) int {
	switch code {
	case policy.CodeDuplicateEntry:
		return http.StatusConflict
	case policy.CodePreviousShiftCMissing, policy.CodeShiftBRequired:
		return http.StatusForbidden
	}
	return http.StatusBadRequest
}

func rejectionResponse(c *gin.Context, rej *policy.Rejection) {
	c.JSON(rejectionStatus(rej.Code), models.APIError{
		Success:       false,
		Message:       rej.Message,
		Code:          rej.Code,
		RequiredDate:  rej.RequiredDate,
		RequiredShift: rej.RequiredShift,
	})
}

// storeErrorResponse translates backing-store failures. Sheet-level auth and
// lookup errors keep their own statuses; anything else is a 500.
func storeErrorResponse(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, storage.ErrSheetNotFound):
		c.JSON(http.StatusNotFound, models.APIError{
			Success: false,
			Message: "Google Sheet not found. Please check SPREADSHEET_ID",
			Code:    "SHEET_NOT_FOUND",
		})
	case errors.Is(err, storage.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, models.APIError{
			Success: false,
			Message: "Permission denied. Please check service account permissions",
			Code:    "PERMISSION_DENIED",
		})
	default:
		c.JSON(http.StatusInternalServerError, models.APIError{
			Success: false,
			Message: message,
			Error:   err.Error(),
		})
	}
}

// submissionTimestamp formats the client-supplied instant, falling back to
// now when it is missing or unparseable.
func submissionTimestamp(raw string) string {
	if raw != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", dates.TimestampLayout} {
			if t, err := time.Parse(layout, raw); err == nil {
				return dates.FormatTimestamp(t)
			}
		}
	}
	return dates.FormatTimestamp(time.Now())
}

// SubmitMaintenanceLog godoc
// @Summary      Submit a maintenance log for a shift
// @Tags         maintenance-log
// @Accept       json
// @Produce      json
// @Param        body  body      models.LogRequest  true  "Shift log"
// @Success      201   {object}  models.SubmitResponse
// @Failure      400   {object}  models.APIError
// @Failure      403   {object}  models.APIError
// @Failure      409   {object}  models.APIError
// @Router       /api/maintenance-log [post]
func SubmitMaintenanceLog(store storage.LogStore, mu *sync.Mutex, notifier *services.EmailNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.APIError{
				Success: false,
				Message: "Invalid request body",
				Code:    policy.CodeInvalidInput,
				Error:   err.Error(),
			})
			return
		}

		// Serialize read-evaluate-append so two in-flight submissions for the
		// same (date, shift) cannot both pass the duplicate check. The window
		// against writers outside this process remains.
		mu.Lock()
		defer mu.Unlock()

		history, err := store.ReadAll()
		if err != nil {
			storeErrorResponse(c, "Validation error occurred", err)
			return
		}

		if rej := policy.Evaluate(history, req); rej != nil {
			rejectionResponse(c, rej)
			return
		}

		shift := strings.ToUpper(strings.TrimSpace(req.Shift))
		timestamp := submissionTimestamp(req.Timestamp)

		var names []string
		for _, name := range []string{req.Electrician1, req.Electrician2} {
			if strings.TrimSpace(name) != "" {
				names = append(names, name)
			}
		}
		electrician := strings.Join(names, ", ")

		row := storage.RowForLog(timestamp, electrician, shift, req.EquipmentStatus)
		if err := store.Append(row); err != nil {
			storeErrorResponse(c, "Failed to submit maintenance log", err)
			return
		}

		// Closing shift C completes the day; notify if mail is configured.
		if shift == "C" && notifier != nil {
			dayLogs := make([]models.MaintenanceLog, 0, 3)
			for _, l := range history {
				if l.Date == req.Date {
					dayLogs = append(dayLogs, l)
				}
			}
			dayLogs = append(dayLogs, models.MaintenanceLog{
				Timestamp:       timestamp,
				Electrician:     electrician,
				Shift:           shift,
				Date:            req.Date,
				EquipmentStatus: req.EquipmentStatus,
			})
			go notifier.SendDayClosure(req.Date, dayLogs)
		}

		c.JSON(http.StatusCreated, models.SubmitResponse{
			Success: true,
			Message: "Maintenance log submitted successfully",
			Data: models.SubmitResponseData{
				Timestamp:       timestamp,
				Electrician:     electrician,
				Shift:           shift,
				EquipmentStatus: req.EquipmentStatus,
			},
		})
	}
}

// GetMaintenanceLogs godoc
// @Summary      List maintenance logs
// @Tags         maintenance-log
// @Produce      json
// @Param        date   query     string  false  "Canonical date YYYY-MM-DD"
// @Param        shift  query     string  false  "Shift A, B or C"
// @Param        limit  query     int     false  "Max rows returned"  default(50)
// @Success      200    {object}  models.ListResponse
// @Router       /api/maintenance-log [get]
func GetMaintenanceLogs(store storage.LogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		shift := c.Query("shift")
		limit := 50
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		logs, err := store.ReadAll()
		if err != nil {
			storeErrorResponse(c, "Failed to fetch maintenance logs", err)
			return
		}

		filtered := make([]models.MaintenanceLog, 0, len(logs))
		for _, l := range logs {
			if date != "" && l.Date != date {
				continue
			}
			if shift != "" && !strings.EqualFold(strings.TrimSpace(l.Shift), strings.TrimSpace(shift)) {
				continue
			}
			filtered = append(filtered, l)
			if len(filtered) == limit {
				break
			}
		}

		c.JSON(http.StatusOK, models.ListResponse{
			Success: true,
			Count:   len(filtered),
			Data:    filtered,
		})
	}
}

// CheckSubmissionStatus godoc
// @Summary      Report submitted and eligible shifts for a date
// @Tags         maintenance-log
// @Produce      json
// @Param        date  query     string  true  "Canonical date YYYY-MM-DD"
// @Success      200   {object}  models.StatusResponse
// @Failure      400   {object}  models.APIError
// @Router       /api/maintenance-log/status [get]
func CheckSubmissionStatus(store storage.LogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, models.APIError{
				Success: false,
				Message: "Date parameter is required",
			})
			return
		}

		logs, err := store.ReadAll()
		if err != nil {
			storeErrorResponse(c, "Error checking submission status", err)
			return
		}

		st := policy.Status(logs, date)
		submitted := st.SubmittedShifts
		if submitted == nil {
			submitted = []string{}
		}

		c.JSON(http.StatusOK, models.StatusResponse{
			Success:         true,
			Date:            date,
			SubmittedShifts: submitted,
			CanSubmit:       st.CanSubmit,
			PreviousDateCheck: models.PreviousDateCheck{
				Date:            st.PreviousDate,
				ShiftCSubmitted: st.PrevDayClosed,
			},
		})
	}
}

// DeleteMaintenanceLog godoc
// @Summary      Delete a maintenance log (admin only)
// @Tags         maintenance-log
// @Produce      json
// @Param        timestamp  path      string  true  "Canonical date YYYY-MM-DD of the row"
// @Param        shift      path      string  true  "Shift A, B or C"
// @Success      200        {object}  models.SubmitResponse
// @Failure      404        {object}  models.APIError
// @Security     BearerAuth
// @Router       /api/maintenance-log/{timestamp}/{shift} [delete]
func DeleteMaintenanceLog(store storage.LogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("timestamp")
		shift := strings.ToUpper(strings.TrimSpace(c.Param("shift")))

		logs, err := store.ReadAll()
		if err != nil {
			storeErrorResponse(c, "Failed to delete maintenance log", err)
			return
		}

		// Last match wins when duplicates slipped past the race window.
		rowIndex := -1
		for _, l := range logs {
			if l.Date == date && strings.ToUpper(strings.TrimSpace(l.Shift)) == shift {
				rowIndex = l.RowIndex
			}
		}

		if rowIndex == -1 {
			c.JSON(http.StatusNotFound, models.APIError{
				Success: false,
				Message: "Maintenance log not found",
			})
			return
		}

		if err := store.DeleteRow(rowIndex); err != nil {
			storeErrorResponse(c, "Failed to delete maintenance log", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("Maintenance log for %s shift %s deleted successfully", date, shift),
		})
	}
}
