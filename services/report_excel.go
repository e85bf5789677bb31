package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateReportExcel renders a line-item report as an Excel workbook and
// returns the file contents. Values are rounded to 2 decimals here, at the
// output boundary only.
func GenerateReportExcel(report *LineItemReport, title string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Line Items"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}
	lastCol := columns[len(columns)-1]

	widths := []float64{12, 22, 12, 14, 20, 12, 9, 9, 9, 12, 10, 12, 28}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: reportBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: reportBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: reportBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	grandStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create grand total style: %w", err)
	}

	// ── Title row ───────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeReportCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// ── Detail header + rows ────────────────────────────────────────────

	headers := []string{
		"WO#", "Building", "NTE", "Category", "Name", "Date",
		"Hours RT", "Hours OT", "Miles", "Base Cost", "Markup %", "Total", "Notes",
	}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s3", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	row := 4
	for _, item := range report.Items {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeReportCell(item.WONumber))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeReportCell(item.Building))
		f.SetCellValue(sheetName, "C"+rowStr, Round2(item.NTE))
		f.SetCellValue(sheetName, "D"+rowStr, categoryLabel(item.Category))
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeReportCell(item.Name))
		f.SetCellValue(sheetName, "F"+rowStr, item.WorkDate)
		if item.HoursRegular != 0 {
			f.SetCellValue(sheetName, "G"+rowStr, Round2(item.HoursRegular))
		}
		if item.HoursOvertime != 0 {
			f.SetCellValue(sheetName, "H"+rowStr, Round2(item.HoursOvertime))
		}
		if item.Miles != 0 {
			f.SetCellValue(sheetName, "I"+rowStr, Round2(item.Miles))
		}
		f.SetCellValue(sheetName, "J"+rowStr, Round2(item.BaseCost))
		if item.MarkupPercent != 0 {
			f.SetCellValue(sheetName, "K"+rowStr, item.MarkupPercent)
		}
		f.SetCellValue(sheetName, "L"+rowStr, Round2(item.Total))
		f.SetCellValue(sheetName, "M"+rowStr, sanitizeReportCell(item.Notes))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)
		row++
	}

	// ── Summary block ───────────────────────────────────────────────────

	row++
	summaryHeaders := []string{
		"WO#", "Building", "NTE", "Hours RT", "Hours OT", "Miles",
		"Labor", "Mileage", "Material", "Equipment", "Trailer", "Rental",
		"Admin", "Grand Total", "Remaining",
	}
	// The summary block is wider than the detail block; extend columns.
	summaryCols := append(append([]string{}, columns...), "N", "O")
	for i, h := range summaryHeaders {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", summaryCols[i], row), h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("O%d", row), headerStyle)
	row++

	for _, s := range report.Summaries {
		values := []any{
			sanitizeReportCell(s.WONumber),
			sanitizeReportCell(s.Building),
			Round2(s.NTE),
			Round2(s.TotalHoursRegular),
			Round2(s.TotalHoursOvertime),
			Round2(s.TotalMiles),
			Round2(s.LaborCost),
			Round2(s.MileageCost),
			Round2(s.MaterialCost),
			Round2(s.EquipmentCost),
			Round2(s.TrailerCost),
			Round2(s.RentalCost),
			Round2(s.AdminCost),
			Round2(s.GrandTotal),
			Round2(s.Remaining),
		}
		for i, v := range values {
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", summaryCols[i], row), v)
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("O%d", row), summaryStyle)
		row++
	}

	// ── Grand total row ─────────────────────────────────────────────────

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "GRAND TOTAL")
	f.SetCellValue(sheetName, fmt.Sprintf("N%d", row), Round2(report.GrandTotal))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("O%d", row), grandStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// categoryLabel is the column value for a category; "Material" is shown as
// "Material (company)" to distinguish it from reimbursed tech material.
func categoryLabel(c LineItemCategory) string {
	if c == CategoryMaterial {
		return "Material (company)"
	}
	return c.String()
}

func reportBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}

// sanitizeReportCell prevents formula injection by prefixing dangerous
// leading characters with a single quote.
func sanitizeReportCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
