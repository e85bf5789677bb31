package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// GenerateReportCSV renders a line-item report as CSV: the ordered detail
// rows, a blank line, one summary row per work order, and the grand total
// row. Same contract as the Excel rendering.
func GenerateReportCSV(report *LineItemReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"WO#", "Building", "NTE", "Category", "Name", "Date",
		"Hours RT", "Hours OT", "Miles", "Base Cost", "Markup %", "Total", "Notes",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range report.Items {
		record := []string{
			item.WONumber,
			item.Building,
			fmt.Sprintf("%.2f", item.NTE),
			categoryLabel(item.Category),
			item.Name,
			item.WorkDate,
			FormatHours(item.HoursRegular),
			FormatHours(item.HoursOvertime),
			FormatHours(item.Miles),
			fmt.Sprintf("%.2f", item.BaseCost),
			formatMarkup(item.MarkupPercent),
			fmt.Sprintf("%.2f", item.Total),
			item.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := w.Write([]string{}); err != nil {
		return nil, fmt.Errorf("write csv separator: %w", err)
	}

	summaryHeader := []string{
		"WO#", "Building", "NTE", "Hours RT", "Hours OT", "Miles",
		"Labor", "Mileage", "Material", "Equipment", "Trailer", "Rental",
		"Admin", "Grand Total", "Remaining",
	}
	if err := w.Write(summaryHeader); err != nil {
		return nil, fmt.Errorf("write csv summary header: %w", err)
	}

	for _, s := range report.Summaries {
		record := []string{
			s.WONumber,
			s.Building,
			fmt.Sprintf("%.2f", s.NTE),
			fmt.Sprintf("%.2f", s.TotalHoursRegular),
			fmt.Sprintf("%.2f", s.TotalHoursOvertime),
			fmt.Sprintf("%.2f", s.TotalMiles),
			fmt.Sprintf("%.2f", s.LaborCost),
			fmt.Sprintf("%.2f", s.MileageCost),
			fmt.Sprintf("%.2f", s.MaterialCost),
			fmt.Sprintf("%.2f", s.EquipmentCost),
			fmt.Sprintf("%.2f", s.TrailerCost),
			fmt.Sprintf("%.2f", s.RentalCost),
			fmt.Sprintf("%.2f", s.AdminCost),
			fmt.Sprintf("%.2f", s.GrandTotal),
			fmt.Sprintf("%.2f", s.Remaining),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv summary row: %w", err)
		}
	}

	grand := []string{"GRAND TOTAL", "", "", "", "", "", "", "", "", "", "", "", "",
		fmt.Sprintf("%.2f", report.GrandTotal), ""}
	if err := w.Write(grand); err != nil {
		return nil, fmt.Errorf("write csv grand total: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatMarkup(percent float64) string {
	if percent == 0 {
		return ""
	}
	return fmt.Sprintf("%.0f%%", percent)
}
