package services

import (
	"errors"
	"sort"
)

// ErrNothingToExport is returned when a report is requested for an empty
// work-order selection.
var ErrNothingToExport = errors.New("no work orders selected: nothing to export")

// LineItemCategory tags a report row. The declaration order is the sort
// precedence within a work order and is part of the report contract.
type LineItemCategory int

const (
	CategoryLabor LineItemCategory = iota
	CategoryMileage
	CategoryTechMaterial
	CategoryMaterial
	CategoryEquipment
	CategoryTrailer
	CategoryRental
	CategoryAdmin
)

func (c LineItemCategory) String() string {
	switch c {
	case CategoryLabor:
		return "Labor"
	case CategoryMileage:
		return "Mileage"
	case CategoryTechMaterial:
		return "Tech Material"
	case CategoryMaterial:
		return "Material"
	case CategoryEquipment:
		return "Equipment"
	case CategoryTrailer:
		return "Trailer"
	case CategoryRental:
		return "Rental"
	case CategoryAdmin:
		return "Admin"
	}
	return "Unknown"
}

// legacyDatePlaceholder marks labor/mileage rows that come from the legacy
// generation, which has no date breakdown. Part of the report contract.
const legacyDatePlaceholder = "(legacy)"

// LineItem is one auditable report row.
type LineItem struct {
	WONumber string
	Building string
	NTE      float64
	Category LineItemCategory
	Name     string // technician, "Company", or "Office"
	WorkDate string // date, "(legacy)", or blank for company expenses

	HoursRegular  float64
	HoursOvertime float64
	Miles         float64

	BaseCost      float64
	MarkupPercent float64 // 0 for labor/mileage/admin
	Total         float64

	Notes string
}

// WorkOrderSummaryRow is the per-work-order rollup at the bottom of the
// report. Its fields are built by re-summing that work order's emitted line
// items by category, not by recomputing from the source records; the two
// must agree exactly, and the tests hold them to it.
type WorkOrderSummaryRow struct {
	WONumber string
	Building string
	NTE      float64

	TotalHoursRegular  float64
	TotalHoursOvertime float64
	TotalMiles         float64

	LaborCost     float64
	MileageCost   float64
	MaterialCost  float64 // company material + reimbursed tech material
	EquipmentCost float64
	TrailerCost   float64
	RentalCost    float64
	AdminCost     float64

	GrandTotal   float64
	Remaining    float64
	IsOverBudget bool
}

// LineItemReport is the full batch report: ordered detail rows, one summary
// row per work order, and the grand total across the batch.
type LineItemReport struct {
	Items      []LineItem
	Summaries  []WorkOrderSummaryRow
	GrandTotal float64
}

// BuildLineItemReport expands a batch of work orders into the line-item
// report. Each work order's labor source is reconciled exactly once and the
// same decision feeds both its detail rows and its summary row.
func BuildLineItemReport(bundles []WorkOrderBundle, rates RateTable) (*LineItemReport, error) {
	if len(bundles) == 0 {
		return nil, ErrNothingToExport
	}

	report := &LineItemReport{}

	for _, b := range bundles {
		labor := ReconcileLaborSource(b.WorkOrder, b.DailyLogs, b.Assignments)
		items := expandWorkOrder(b.WorkOrder, labor, rates)
		report.Items = append(report.Items, items...)
		report.Summaries = append(report.Summaries, summarizeItems(b.WorkOrder, items, rates))
	}

	sort.SliceStable(report.Items, func(i, j int) bool {
		if report.Items[i].WONumber != report.Items[j].WONumber {
			return report.Items[i].WONumber < report.Items[j].WONumber
		}
		return report.Items[i].Category < report.Items[j].Category
	})
	sort.SliceStable(report.Summaries, func(i, j int) bool {
		return report.Summaries[i].WONumber < report.Summaries[j].WONumber
	})

	for _, s := range report.Summaries {
		report.GrandTotal += s.GrandTotal
	}

	return report, nil
}

// expandWorkOrder emits the detail rows for one work order.
func expandWorkOrder(wo WorkOrder, labor ReconciledLabor, rates RateTable) []LineItem {
	var items []LineItem

	add := func(item LineItem) {
		item.WONumber = wo.Number
		item.Building = wo.Building
		item.NTE = wo.NTE
		items = append(items, item)
	}

	if labor.Source == SourceDailyLog {
		// One Labor/Mileage row per technician per distinct date. Multiple
		// same-day entries by one technician are summed into the one row.
		type dayKey struct{ tech, date string }
		grouped := make(map[dayKey]*LaborRow)
		var keys []dayKey
		for _, row := range labor.Rows {
			k := dayKey{row.TechName, row.WorkDate}
			g, ok := grouped[k]
			if !ok {
				g = &LaborRow{TechName: row.TechName, WorkDate: row.WorkDate}
				grouped[k] = g
				keys = append(keys, k)
			}
			g.HoursRegular += row.HoursRegular
			g.HoursOvertime += row.HoursOvertime
			g.Miles += row.Miles
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].date != keys[j].date {
				return keys[i].date < keys[j].date
			}
			return keys[i].tech < keys[j].tech
		})

		for _, k := range keys {
			g := grouped[k]
			if g.HoursRegular > 0 || g.HoursOvertime > 0 {
				cost := rates.LaborCost(g.HoursRegular, g.HoursOvertime)
				add(LineItem{
					Category:      CategoryLabor,
					Name:          g.TechName,
					WorkDate:      g.WorkDate,
					HoursRegular:  g.HoursRegular,
					HoursOvertime: g.HoursOvertime,
					BaseCost:      cost,
					Total:         cost,
				})
			}
			if g.Miles > 0 {
				cost := rates.MileageCost(g.Miles)
				add(LineItem{
					Category: CategoryMileage,
					Name:     g.TechName,
					WorkDate: g.WorkDate,
					Miles:    g.Miles,
					BaseCost: cost,
					Total:    cost,
				})
			}
		}

		// Tech material stays one row per log entry, not per day.
		for _, row := range labor.Rows {
			if row.MaterialCost > 0 {
				add(LineItem{
					Category:      CategoryTechMaterial,
					Name:          row.TechName,
					WorkDate:      row.WorkDate,
					BaseCost:      row.MaterialCost,
					MarkupPercent: rates.MarkupPercent(),
					Total:         rates.WithMarkup(row.MaterialCost),
					Notes:         row.Notes,
				})
			}
		}
	} else {
		// Legacy rows: one per person, no date breakdown.
		for _, row := range labor.Rows {
			if row.HoursRegular > 0 || row.HoursOvertime > 0 {
				cost := rates.LaborCost(row.HoursRegular, row.HoursOvertime)
				add(LineItem{
					Category:      CategoryLabor,
					Name:          row.TechName,
					WorkDate:      legacyDatePlaceholder,
					HoursRegular:  row.HoursRegular,
					HoursOvertime: row.HoursOvertime,
					BaseCost:      cost,
					Total:         cost,
				})
			}
			if row.Miles > 0 {
				cost := rates.MileageCost(row.Miles)
				add(LineItem{
					Category: CategoryMileage,
					Name:     row.TechName,
					WorkDate: legacyDatePlaceholder,
					Miles:    row.Miles,
					BaseCost: cost,
					Total:    cost,
				})
			}
		}
	}

	// Company-paid expense categories: one row each, omitted when zero.
	expenses := []struct {
		category LineItemCategory
		base     float64
	}{
		{CategoryMaterial, wo.MaterialCost},
		{CategoryEquipment, wo.EquipmentCost},
		{CategoryTrailer, wo.TrailerCost},
		{CategoryRental, wo.RentalCost},
	}
	for _, exp := range expenses {
		if exp.base > 0 {
			add(LineItem{
				Category:      exp.category,
				Name:          "Company",
				BaseCost:      exp.base,
				MarkupPercent: rates.MarkupPercent(),
				Total:         rates.WithMarkup(exp.base),
			})
		}
	}

	// Admin row: always present, fixed hours at the regular rate.
	adminCost := rates.AdminCost()
	add(LineItem{
		Category:     CategoryAdmin,
		Name:         "Office",
		HoursRegular: rates.AdminHours,
		BaseCost:     adminCost,
		Total:        adminCost,
	})

	return items
}

// summarizeItems builds the per-work-order summary row from the emitted
// detail rows themselves.
func summarizeItems(wo WorkOrder, items []LineItem, rates RateTable) WorkOrderSummaryRow {
	s := WorkOrderSummaryRow{
		WONumber: wo.Number,
		Building: wo.Building,
		NTE:      wo.NTE,
	}

	for _, item := range items {
		s.GrandTotal += item.Total

		switch item.Category {
		case CategoryLabor:
			s.TotalHoursRegular += item.HoursRegular
			s.TotalHoursOvertime += item.HoursOvertime
			s.LaborCost += item.Total
		case CategoryMileage:
			s.TotalMiles += item.Miles
			s.MileageCost += item.Total
		case CategoryTechMaterial, CategoryMaterial:
			s.MaterialCost += item.Total
		case CategoryEquipment:
			s.EquipmentCost += item.Total
		case CategoryTrailer:
			s.TrailerCost += item.Total
		case CategoryRental:
			s.RentalCost += item.Total
		case CategoryAdmin:
			s.AdminCost += item.Total
		}
	}

	budget := EvaluateBudget(s.GrandTotal, wo.NTE)
	s.Remaining = budget.Remaining
	s.IsOverBudget = budget.IsOverBudget

	return s
}
