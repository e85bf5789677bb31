package services

// LaborSource identifies which data-entry generation supplies labor and
// mileage facts for a work order.
type LaborSource int

const (
	// SourceDailyLog: per-technician, per-date log entries exist. All
	// legacy hours/miles for the work order are suppressed.
	SourceDailyLog LaborSource = iota
	// SourceLegacy: no log entries; the work-order-level lead fields plus
	// the team assignment rows supply labor and mileage.
	SourceLegacy
)

// LaborRow is one normalized labor/mileage fact. Under SourceDailyLog there
// is one row per log entry with WorkDate set; under SourceLegacy there is
// one row per person with WorkDate empty.
type LaborRow struct {
	TechName      string
	WorkDate      string // empty for legacy rows
	HoursRegular  float64
	HoursOvertime float64
	Miles         float64
	MaterialCost  float64 // tech-incurred; only nonzero for daily-log rows
	Notes         string
}

// ReconciledLabor is the single source-of-truth decision for a work order.
// The cost summary and the line-item report both consume the same value so
// the two paths cannot disagree about which generation counts.
type ReconciledLabor struct {
	Source LaborSource
	Rows   []LaborRow
}

// ReconcileLaborSource decides which generation of records supplies labor
// and mileage for a work order. The presence of any daily log entry
// suppresses every legacy contribution (lead fields and assignments alike);
// company-paid expense fields are not part of this switch and always come
// from the work order record.
//
// An empty row set under either source is valid: it simply means no labor
// or mileage has been recorded yet.
func ReconcileLaborSource(wo WorkOrder, logs []DailyHoursEntry, assignments []TeamAssignment) ReconciledLabor {
	if len(logs) > 0 {
		rows := make([]LaborRow, 0, len(logs))
		for _, entry := range logs {
			name := entry.TechName
			if name == "" {
				name = "Unknown"
			}
			rows = append(rows, LaborRow{
				TechName:      name,
				WorkDate:      entry.WorkDate,
				HoursRegular:  entry.HoursRegular,
				HoursOvertime: entry.HoursOvertime,
				Miles:         entry.Miles,
				MaterialCost:  entry.MaterialCost,
				Notes:         entry.Notes,
			})
		}
		return ReconciledLabor{Source: SourceDailyLog, Rows: rows}
	}

	var rows []LaborRow

	// The lead technician's hours live directly on the work order record.
	// Synthesize a row for them only when the fields carry anything, so an
	// untouched work order reconciles to an empty row set.
	if wo.LeadHoursRegular > 0 || wo.LeadHoursOvertime > 0 || wo.LeadMiles > 0 {
		name := wo.LeadTechName
		if name == "" {
			name = "Lead Tech"
		}
		rows = append(rows, LaborRow{
			TechName:      name,
			HoursRegular:  wo.LeadHoursRegular,
			HoursOvertime: wo.LeadHoursOvertime,
			Miles:         wo.LeadMiles,
		})
	}

	for _, a := range assignments {
		name := a.TechName
		if name == "" {
			name = "Unknown"
		}
		rows = append(rows, LaborRow{
			TechName:      name,
			HoursRegular:  a.HoursRegular,
			HoursOvertime: a.HoursOvertime,
			Miles:         a.Miles,
		})
	}

	return ReconciledLabor{Source: SourceLegacy, Rows: rows}
}
