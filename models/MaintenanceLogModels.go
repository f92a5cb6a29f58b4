package models

// EquipmentChannels lists the equipment channel columns in sheet order.
// The first three sheet columns (timestamp, electrician, shift) come before
// these; the header row is row 1 and is always skipped on read.
var EquipmentChannels = []string{
	"boiler", "solvent", "refinery", "np", "pp", "dryer",
	"prep_compressor", "pump", "prep", "wbsedcl_unit",
	"Pulverizer_Mega", "Pulverizer_Oils", "Boiler_12_Ton",
}

type EquipmentStatus struct {
	Boiler         string `json:"boiler"`
	Solvent        string `json:"solvent"`
	Refinery       string `json:"refinery"`
	NP             string `json:"np"`
	PP             string `json:"pp"`
	Dryer          string `json:"dryer"`
	PrepCompressor string `json:"prep_compressor"`
	Pump           string `json:"pump"`
	Prep           string `json:"prep"`
	WBSEDCLUnit    string `json:"wbsedcl_unit"`
	PulverizerMega string `json:"Pulverizer_Mega"`
	PulverizerOils string `json:"Pulverizer_Oils"`
	Boiler12Ton    string `json:"Boiler_12_Ton"`
}

// Values returns the channel readings in sheet column order (columns D to P).
func (s EquipmentStatus) Values() []string {
	return []string{
		s.Boiler, s.Solvent, s.Refinery, s.NP, s.PP, s.Dryer,
		s.PrepCompressor, s.Pump, s.Prep, s.WBSEDCLUnit,
		s.PulverizerMega, s.PulverizerOils, s.Boiler12Ton,
	}
}

// EquipmentStatusFromValues builds an EquipmentStatus from sheet cells in
// column order. Missing trailing cells are treated as empty readings.
func EquipmentStatusFromValues(cells []string) EquipmentStatus {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return EquipmentStatus{
		Boiler:         get(0),
		Solvent:        get(1),
		Refinery:       get(2),
		NP:             get(3),
		PP:             get(4),
		Dryer:          get(5),
		PrepCompressor: get(6),
		Pump:           get(7),
		Prep:           get(8),
		WBSEDCLUnit:    get(9),
		PulverizerMega: get(10),
		PulverizerOils: get(11),
		Boiler12Ton:    get(12),
	}
}

// MaintenanceLog is one submitted record as read back from the sheet.
// Date is derived from the timestamp column and normalized to YYYY-MM-DD;
// an unparseable timestamp leaves Date empty.
type MaintenanceLog struct {
	Timestamp       string          `json:"timestamp"`
	Electrician     string          `json:"electrician"`
	Shift           string          `json:"shift"`
	Date            string          `json:"date"`
	EquipmentStatus EquipmentStatus `json:"equipment_status"`

	// Physical sheet row, 1-based (header is row 1). Not serialized.
	RowIndex int `json:"-"`
}

// LogRequest is the POST /api/maintenance-log body.
type LogRequest struct {
	Date            string          `json:"date" example:"2024-01-02"`
	Electrician1    string          `json:"electrician1" example:"S. Mondal"`
	Electrician2    string          `json:"electrician2" example:""`
	Shift           string          `json:"shift" example:"A"`
	EquipmentStatus EquipmentStatus `json:"equipment_status"`
	Timestamp       string          `json:"timestamp"`
}

type SubmitResponseData struct {
	Timestamp       string          `json:"timestamp"`
	Electrician     string          `json:"electrician"`
	Shift           string          `json:"shift"`
	EquipmentStatus EquipmentStatus `json:"equipment_status"`
}

type SubmitResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    SubmitResponseData `json:"data"`
}

type ListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []MaintenanceLog `json:"data"`
}

type CanSubmit struct {
	A bool `json:"A"`
	B bool `json:"B"`
	C bool `json:"C"`
}

type PreviousDateCheck struct {
	Date            string `json:"date"`
	ShiftCSubmitted bool   `json:"shiftCSubmitted"`
}

type StatusResponse struct {
	Success           bool              `json:"success"`
	Date              string            `json:"date"`
	SubmittedShifts   []string          `json:"submittedShifts"`
	CanSubmit         CanSubmit         `json:"canSubmit"`
	PreviousDateCheck PreviousDateCheck `json:"previousDateCheck"`
}

// APIError is the uniform failure body. Code, RequiredDate and RequiredShift
// are set only for policy rejections.
type APIError struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Code          string `json:"code,omitempty"`
	RequiredDate  string `json:"requiredDate,omitempty"`
	RequiredShift string `json:"requiredShift,omitempty"`
	Error         string `json:"error,omitempty"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
