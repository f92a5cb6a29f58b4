package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"maintlog/models"
	"maintlog/policy"
	"maintlog/storage"
)

// channelLabels are the row labels in the report table, matching the sheet
// column order.
var channelLabels = []string{
	"Boiler", "Solvent", "Refinery", "NP", "PP", "Dryer",
	"Prep Compressor", "Pump", "Prep", "WBSEDCL Unit",
	"Pulverizer Mega", "Pulverizer Oils", "Boiler 12 Ton",
}

// GenerateDayReport godoc
// @Summary      Render a PDF report of a date's submitted shifts
// @Tags         maintenance-log
// @Produce      application/pdf
// @Param        date  query     string  true  "Canonical date YYYY-MM-DD"
// @Success      200   {file}    file    "PDF report"
// @Failure      400   {object}  models.APIError
// @Router       /api/maintenance-log/report [get]
func GenerateDayReport(store storage.LogStore, publicBaseURL string) gin.HandlerFunc {
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
			storeErrorResponse(c, "Failed to generate report", err)
			return
		}

		byShift := map[string]*models.MaintenanceLog{}
		for _, shift := range []string{"A", "B", "C"} {
			byShift[shift] = policy.Find(logs, date, shift)
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(190, 10, "Maintenance Shift Report")
		pdf.Ln(10)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(190, 8, fmt.Sprintf("Date: %s", date))
		pdf.Ln(10)

		// --- Shift summary ---
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(30, 8, "Shift", "1", 0, "C", true, 0, "")
		pdf.CellFormat(80, 8, "Electrician", "1", 0, "L", true, 0, "")
		pdf.CellFormat(80, 8, "Submitted At", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, shift := range []string{"A", "B", "C"} {
			log := byShift[shift]
			electrician, submitted := "-", "not submitted"
			if log != nil {
				electrician = log.Electrician
				submitted = log.Timestamp
			}
			pdf.CellFormat(30, 8, shift, "1", 0, "C", false, 0, "")
			pdf.CellFormat(80, 8, electrician, "1", 0, "L", false, 0, "")
			pdf.CellFormat(80, 8, submitted, "1", 1, "L", false, 0, "")
		}
		pdf.Ln(6)

		// --- Equipment readings, one column per shift ---
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(70, 8, "Equipment", "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 8, "Shift A", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 8, "Shift B", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 8, "Shift C", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for i, label := range channelLabels {
			pdf.CellFormat(70, 7, label, "1", 0, "L", false, 0, "")
			for _, shift := range []string{"A", "B", "C"} {
				value := ""
				if log := byShift[shift]; log != nil {
					value = log.EquipmentStatus.Values()[i]
				}
				last := 0
				if shift == "C" {
					last = 1
				}
				pdf.CellFormat(40, 7, value, "1", last, "C", false, 0, "")
			}
		}
		pdf.Ln(8)

		// QR linking back to the live status query for this date.
		statusURL := fmt.Sprintf("%s/api/maintenance-log/status?date=%s",
			strings.TrimRight(publicBaseURL, "/"), date)
		if png, err := qrcode.Encode(statusURL, qrcode.Medium, 256); err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("status-qr", opts, bytes.NewReader(png))
			pdf.ImageOptions("status-qr", 10, pdf.GetY(), 30, 30, false, opts, 0, "")
			pdf.SetXY(45, pdf.GetY()+12)
			pdf.SetFont("Arial", "", 9)
			pdf.Cell(150, 6, "Scan for live submission status")
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, models.APIError{
				Success: false,
				Message: "Failed to render PDF",
				Error:   err.Error(),
			})
			return
		}

		c.Header("Content-Disposition",
			fmt.Sprintf(`attachment; filename="shift-report-%s.pdf"`, date))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
