package services

// Typed snapshots of the records the engine consumes. They are assembled
// from PocketBase records by report_data.go; numeric fields that are
// missing or malformed in storage arrive here already coerced to zero, so
// the calculations never see a missing-value marker.

// WorkOrder is one unit of billable field work.
type WorkOrder struct {
	ID            string
	Number        string // display number, e.g. "WO-2417"
	Building      string
	Status        string
	Description   string
	NTE           float64 // budget ceiling; 0 means no ceiling set
	MaterialCost  float64 // company-paid expense categories
	EquipmentCost float64
	TrailerCost   float64
	RentalCost    float64

	// Legacy generation: aggregate hours/miles for the lead technician,
	// stored directly on the work order record.
	LeadHoursRegular  float64
	LeadHoursOvertime float64
	LeadMiles         float64
	LeadTechName      string

	Comments    string
	DateEntered string
}

// DailyHoursEntry is one technician's time/expense log for one work order
// on one calendar date (the current data-entry generation).
type DailyHoursEntry struct {
	ID            string
	WorkOrderID   string
	TechnicianID  string
	TechName      string
	WorkDate      string // YYYY-MM-DD
	HoursRegular  float64
	HoursOvertime float64
	Miles         float64
	MaterialCost  float64 // technician-incurred, reimbursed with markup
	Notes         string
}

// TeamAssignment links a non-lead technician to a work order with aggregate
// hours/miles (the legacy data-entry generation, no date breakdown).
type TeamAssignment struct {
	ID            string
	WorkOrderID   string
	TechnicianID  string
	TechName      string
	HoursRegular  float64
	HoursOvertime float64
	Miles         float64
}

// WorkOrderBundle is everything the engine needs for one work order: the
// record itself plus both generations of labor rows. The reconciler decides
// which generation counts.
type WorkOrderBundle struct {
	WorkOrder   WorkOrder
	DailyLogs   []DailyHoursEntry
	Assignments []TeamAssignment
}
