package services

// TechTotals is the per-technician rollup shown on the cost summary.
type TechTotals struct {
	TechName      string
	HoursRegular  float64
	HoursOvertime float64
	Miles         float64
	LaborCost     float64
}

// CostSummary is the derived cost breakdown for one work order. It is never
// persisted; it is recomputed on demand from the underlying records. All
// amounts are full-precision float64; rounding happens only when a value
// is rendered.
type CostSummary struct {
	Source LaborSource

	TotalHoursRegular  float64
	TotalHoursOvertime float64
	TotalMiles         float64

	LaborCost   float64 // all technicians, regular + overtime
	AdminCost   float64 // fixed charge, independent of hours worked
	MileageCost float64

	MaterialBase           float64 // company-paid categories
	MaterialWithMarkup     float64
	EquipmentBase          float64
	EquipmentWithMarkup    float64
	TrailerBase            float64
	TrailerWithMarkup      float64
	RentalBase             float64
	RentalWithMarkup       float64
	TechMaterialBase       float64 // technician-incurred, daily-log source only
	TechMaterialWithMarkup float64

	GrandTotal float64

	PerTech []TechTotals
}

// BuildCostSummary computes the full cost breakdown for one work order from
// its reconciled labor rows. Pure function: no I/O, no rounding.
//
// Labor is billed at cost (no markup); only the expense categories are
// cost-plus. The mobile app historically applied a markup multiplier to
// labor in one summary view, but the dashboard and every export path do
// not, and invoicing follows the dashboard.
func BuildCostSummary(wo WorkOrder, labor ReconciledLabor, rates RateTable) CostSummary {
	s := CostSummary{Source: labor.Source}

	perTech := make(map[string]*TechTotals)
	var order []string

	for _, row := range labor.Rows {
		s.TotalHoursRegular += row.HoursRegular
		s.TotalHoursOvertime += row.HoursOvertime
		s.TotalMiles += row.Miles

		if labor.Source == SourceDailyLog {
			s.TechMaterialBase += row.MaterialCost
		}

		tt, ok := perTech[row.TechName]
		if !ok {
			tt = &TechTotals{TechName: row.TechName}
			perTech[row.TechName] = tt
			order = append(order, row.TechName)
		}
		tt.HoursRegular += row.HoursRegular
		tt.HoursOvertime += row.HoursOvertime
		tt.Miles += row.Miles
	}

	for _, name := range order {
		tt := perTech[name]
		tt.LaborCost = rates.LaborCost(tt.HoursRegular, tt.HoursOvertime)
		s.PerTech = append(s.PerTech, *tt)
	}

	s.LaborCost = rates.LaborCost(s.TotalHoursRegular, s.TotalHoursOvertime)
	s.AdminCost = rates.AdminCost()
	s.MileageCost = rates.MileageCost(s.TotalMiles)

	s.MaterialBase = wo.MaterialCost
	s.MaterialWithMarkup = rates.WithMarkup(wo.MaterialCost)
	s.EquipmentBase = wo.EquipmentCost
	s.EquipmentWithMarkup = rates.WithMarkup(wo.EquipmentCost)
	s.TrailerBase = wo.TrailerCost
	s.TrailerWithMarkup = rates.WithMarkup(wo.TrailerCost)
	s.RentalBase = wo.RentalCost
	s.RentalWithMarkup = rates.WithMarkup(wo.RentalCost)
	s.TechMaterialWithMarkup = rates.WithMarkup(s.TechMaterialBase)

	s.GrandTotal = s.LaborCost + s.AdminCost + s.MileageCost +
		s.MaterialWithMarkup + s.EquipmentWithMarkup +
		s.TrailerWithMarkup + s.RentalWithMarkup +
		s.TechMaterialWithMarkup

	return s
}
