// Package policy decides whether a maintenance-log submission is accepted.
// Evaluate and Status are pure over a snapshot of history; the caller is
// responsible for reading the sheet immediately before calling and for
// appending immediately after acceptance.
package policy

import (
	"fmt"
	"strconv"
	"strings"

	"maintlog/dates"
	"maintlog/models"
)

// Rejection reason codes.
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeDuplicateEntry        = "DUPLICATE_ENTRY"
	CodePreviousShiftCMissing = "PREVIOUS_SHIFT_C_MISSING"
	CodeShiftBRequired        = "SHIFT_B_REQUIRED"
)

// Rejection describes why a submission was refused. RequiredDate and
// RequiredShift hint at the prerequisite submission when one exists.
type Rejection struct {
	Code          string
	Message       string
	RequiredDate  string
	RequiredShift string
}

// Find returns the first log matching date and shift, or nil. Shift
// comparison trims and uppercases both sides. An empty date never matches:
// rows with unparseable timestamps carry an empty derived date, and they
// must not satisfy any rule.
func Find(logs []models.MaintenanceLog, date, shift string) *models.MaintenanceLog {
	if date == "" {
		return nil
	}
	want := strings.ToUpper(strings.TrimSpace(shift))
	for i := range logs {
		if logs[i].Date == date && strings.ToUpper(strings.TrimSpace(logs[i].Shift)) == want {
			return &logs[i]
		}
	}
	return nil
}

func hasNegativeReading(status models.EquipmentStatus) bool {
	for _, v := range status.Values() {
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && n < 0 {
			return true
		}
	}
	return false
}

func validShift(shift string) bool {
	switch strings.ToUpper(strings.TrimSpace(shift)) {
	case "A", "B", "C":
		return true
	}
	return false
}

// Evaluate runs the submission rules in order and returns nil on acceptance
// or the first Rejection hit. Rules fire in a fixed order: required fields,
// electrician presence, non-negative readings, duplicate (date, shift),
// previous day's shift C, then same-day B before C.
func Evaluate(history []models.MaintenanceLog, req models.LogRequest) *Rejection {
	if req.Date == "" || req.Shift == "" {
		return &Rejection{
			Code:    CodeInvalidInput,
			Message: "Date and shift are required fields",
		}
	}
	if !dates.IsCanonical(req.Date) {
		return &Rejection{
			Code:    CodeInvalidInput,
			Message: "Date must be a valid YYYY-MM-DD date",
		}
	}
	if !validShift(req.Shift) {
		return &Rejection{
			Code:    CodeInvalidInput,
			Message: "Shift must be A, B, or C",
		}
	}

	if req.Electrician1 == "" && req.Electrician2 == "" {
		return &Rejection{
			Code:    CodeInvalidInput,
			Message: "At least one electrician must be present for the shift",
		}
	}

	if hasNegativeReading(req.EquipmentStatus) {
		return &Rejection{
			Code:    CodeInvalidInput,
			Message: "Negative values are not allowed in any field",
		}
	}

	shift := strings.ToUpper(strings.TrimSpace(req.Shift))

	if Find(history, req.Date, shift) != nil {
		return &Rejection{
			Code:    CodeDuplicateEntry,
			Message: fmt.Sprintf("Form for %s - Shift %s has already been submitted", req.Date, shift),
		}
	}

	prev := dates.PreviousDay(req.Date)
	if Find(history, prev, "C") == nil {
		return &Rejection{
			Code: CodePreviousShiftCMissing,
			Message: fmt.Sprintf(
				"Cannot submit form for %s. Previous date's Shift C (%s) has not been submitted yet.",
				req.Date, prev),
			RequiredDate:  prev,
			RequiredShift: "C",
		}
	}

	// Same-day "A before B" is intentionally not enforced here; the status
	// projection still reports B as eligible only after A.
	if shift == "C" && Find(history, req.Date, "B") == nil {
		return &Rejection{
			Code: CodeShiftBRequired,
			Message: fmt.Sprintf(
				"Cannot submit Shift C for %s. Shift B for this date has not been submitted yet.",
				req.Date),
			RequiredDate:  req.Date,
			RequiredShift: "B",
		}
	}

	return nil
}

// Status projects which shifts are submitted for a date and which are
// currently eligible. Eligibility mirrors the submission rules: nothing
// opens until the previous day's shift C exists, and shifts unlock in
// A, B, C order.
type ShiftStatus struct {
	SubmittedShifts []string
	CanSubmit       models.CanSubmit
	PreviousDate    string
	PrevDayClosed   bool
}

func Status(history []models.MaintenanceLog, date string) ShiftStatus {
	submitted := map[string]bool{}
	var order []string
	for i := range history {
		if history[i].Date != date {
			continue
		}
		s := strings.ToUpper(strings.TrimSpace(history[i].Shift))
		if !submitted[s] {
			submitted[s] = true
			order = append(order, s)
		}
	}

	prev := dates.PreviousDay(date)
	closed := Find(history, prev, "C") != nil

	return ShiftStatus{
		SubmittedShifts: order,
		CanSubmit: models.CanSubmit{
			A: closed && !submitted["A"],
			B: closed && submitted["A"] && !submitted["B"],
			C: closed && submitted["B"] && !submitted["C"],
		},
		PreviousDate:  prev,
		PrevDayClosed: closed,
	}
}
