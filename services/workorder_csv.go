package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// GenerateWorkOrderCSV renders a flat one-row-per-work-order CSV of the
// selected orders with their computed totals. This is the quick dashboard
// export; the auditable per-line-item report is GenerateReportCSV.
func GenerateWorkOrderCSV(bundles []WorkOrderBundle, rates RateTable) ([]byte, error) {
	if len(bundles) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"WO#", "Building", "Status", "Description", "Lead Tech", "NTE",
		"Hours RT", "Hours OT", "Miles",
		"Material Cost", "Equipment Cost", "Trailer Cost", "Rental Cost",
		"Total Cost", "Remaining", "Comments",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, b := range bundles {
		labor := ReconcileLaborSource(b.WorkOrder, b.DailyLogs, b.Assignments)
		summary := BuildCostSummary(b.WorkOrder, labor, rates)
		budget := EvaluateBudget(summary.GrandTotal, b.WorkOrder.NTE)

		record := []string{
			b.WorkOrder.Number,
			b.WorkOrder.Building,
			b.WorkOrder.Status,
			b.WorkOrder.Description,
			b.WorkOrder.LeadTechName,
			fmt.Sprintf("%.2f", b.WorkOrder.NTE),
			fmt.Sprintf("%.2f", summary.TotalHoursRegular),
			fmt.Sprintf("%.2f", summary.TotalHoursOvertime),
			fmt.Sprintf("%.2f", summary.TotalMiles),
			fmt.Sprintf("%.2f", summary.MaterialBase),
			fmt.Sprintf("%.2f", summary.EquipmentBase),
			fmt.Sprintf("%.2f", summary.TrailerBase),
			fmt.Sprintf("%.2f", summary.RentalBase),
			fmt.Sprintf("%.2f", summary.GrandTotal),
			fmt.Sprintf("%.2f", budget.Remaining),
			b.WorkOrder.Comments,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
