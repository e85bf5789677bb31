package services

import (
	"math"
	"testing"
)

func buildSummary(wo WorkOrder, logs []DailyHoursEntry, assignments []TeamAssignment) CostSummary {
	labor := ReconcileLaborSource(wo, logs, assignments)
	return BuildCostSummary(wo, labor, DefaultRates())
}

func TestBuildCostSummary_LegacyOnly(t *testing.T) {
	// A work order with only legacy lead fields: 6 RT + 2 OT + 30 miles,
	// $100 materials, $1000 NTE.
	wo := WorkOrder{
		Number:            "WO-200",
		NTE:               1000,
		MaterialCost:      100,
		LeadHoursRegular:  6,
		LeadHoursOvertime: 2,
		LeadMiles:         30,
		LeadTechName:      "Mike Jones",
	}

	s := buildSummary(wo, nil, nil)

	if s.LaborCost != 576 {
		t.Errorf("labor = %v, want 576 (6x64 + 2x96)", s.LaborCost)
	}
	if s.MileageCost != 30 {
		t.Errorf("mileage = %v, want 30", s.MileageCost)
	}
	if s.MaterialWithMarkup != 125 {
		t.Errorf("material with markup = %v, want 125", s.MaterialWithMarkup)
	}
	if s.AdminCost != 128 {
		t.Errorf("admin = %v, want 128", s.AdminCost)
	}
	if s.GrandTotal != 859 {
		t.Errorf("grand total = %v, want 859", s.GrandTotal)
	}

	budget := EvaluateBudget(s.GrandTotal, wo.NTE)
	if budget.Remaining != 141 {
		t.Errorf("remaining = %v, want 141", budget.Remaining)
	}
	if budget.IsOverBudget {
		t.Error("should not be over budget")
	}
}

func TestBuildCostSummary_DailyLogSuppressesLegacyHours(t *testing.T) {
	// Same work order, but one daily log entry exists. The 6/2/30 legacy
	// values must be fully ignored.
	wo := WorkOrder{
		Number:            "WO-201",
		NTE:               1000,
		MaterialCost:      100,
		LeadHoursRegular:  6,
		LeadHoursOvertime: 2,
		LeadMiles:         30,
	}
	logs := []DailyHoursEntry{
		{TechName: "Sam Reyes", WorkDate: "2025-03-04", HoursRegular: 5, HoursOvertime: 1, Miles: 20},
	}

	s := buildSummary(wo, logs, nil)

	if s.LaborCost != 416 {
		t.Errorf("labor = %v, want 416 (5x64 + 1x96)", s.LaborCost)
	}
	if s.MileageCost != 20 {
		t.Errorf("mileage = %v, want 20", s.MileageCost)
	}
	// Company-paid material is not part of the labor-source switch.
	if s.MaterialWithMarkup != 125 {
		t.Errorf("material with markup = %v, want 125", s.MaterialWithMarkup)
	}
}

func TestBuildCostSummary_MultiTechnicianDailyLog(t *testing.T) {
	logs := []DailyHoursEntry{
		{TechName: "Sam Reyes", WorkDate: "2025-03-04", HoursRegular: 4},
		{TechName: "Dana Cole", WorkDate: "2025-03-04", HoursRegular: 6},
	}

	s := buildSummary(WorkOrder{Number: "WO-202"}, logs, nil)

	if s.TotalHoursRegular != 10 {
		t.Errorf("total RT = %v, want 10", s.TotalHoursRegular)
	}
	if s.LaborCost != 640 {
		t.Errorf("labor = %v, want 640", s.LaborCost)
	}
	if s.LaborCost+s.AdminCost != 768 {
		t.Errorf("labor+admin = %v, want 768", s.LaborCost+s.AdminCost)
	}
	if len(s.PerTech) != 2 {
		t.Fatalf("per-tech rollups = %d, want 2", len(s.PerTech))
	}
	if s.PerTech[0].LaborCost != 256 || s.PerTech[1].LaborCost != 384 {
		t.Errorf("per-tech labor = %v / %v, want 256 / 384",
			s.PerTech[0].LaborCost, s.PerTech[1].LaborCost)
	}
}

func TestBuildCostSummary_AdminCostInvariant(t *testing.T) {
	tests := []struct {
		name string
		wo   WorkOrder
		logs []DailyHoursEntry
	}{
		{"zero-hour work order", WorkOrder{}, nil},
		{"legacy hours", WorkOrder{LeadHoursRegular: 40}, nil},
		{"daily log hours", WorkOrder{}, []DailyHoursEntry{{TechName: "A", WorkDate: "2025-01-02", HoursRegular: 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildSummary(tt.wo, tt.logs, nil)
			if s.AdminCost != 128 {
				t.Errorf("admin = %v, want exactly 128", s.AdminCost)
			}
		})
	}
}

func TestBuildCostSummary_TechMaterialMarkedUp(t *testing.T) {
	logs := []DailyHoursEntry{
		{TechName: "Sam Reyes", WorkDate: "2025-03-04", HoursRegular: 1, MaterialCost: 40},
		{TechName: "Sam Reyes", WorkDate: "2025-03-05", HoursRegular: 1, MaterialCost: 10},
	}

	s := buildSummary(WorkOrder{MaterialCost: 100}, logs, nil)

	if s.TechMaterialBase != 50 {
		t.Errorf("tech material base = %v, want 50", s.TechMaterialBase)
	}
	if s.TechMaterialWithMarkup != 62.5 {
		t.Errorf("tech material with markup = %v, want 62.5", s.TechMaterialWithMarkup)
	}
	// Reported separately from company-paid material.
	if s.MaterialWithMarkup != 125 {
		t.Errorf("company material with markup = %v, want 125", s.MaterialWithMarkup)
	}
	want := s.LaborCost + s.AdminCost + s.MaterialWithMarkup + s.TechMaterialWithMarkup
	if s.GrandTotal != want {
		t.Errorf("grand total = %v, want %v", s.GrandTotal, want)
	}
}

func TestBuildCostSummary_NoIntermediateRounding(t *testing.T) {
	// Bases chosen so each marked-up amount has a long fraction; the grand
	// total must equal the full-precision sum, not a sum of per-category
	// rounded values.
	wo := WorkOrder{
		MaterialCost:  10.155,
		EquipmentCost: 20.333,
		TrailerCost:   0.444,
		RentalCost:    7.777,
	}

	s := buildSummary(wo, nil, nil)

	exact := 10.155*1.25 + 20.333*1.25 + 0.444*1.25 + 7.777*1.25 + 128
	if s.GrandTotal != exact {
		t.Errorf("grand total = %v, want full-precision %v", s.GrandTotal, exact)
	}

	rounded := Round2(10.155*1.25) + Round2(20.333*1.25) + Round2(0.444*1.25) + Round2(7.777*1.25) + 128
	if math.Abs(rounded-exact) < 1e-12 {
		t.Skip("test values do not exercise rounding drift")
	}
}

func TestBuildCostSummary_SameDayEntriesAreSummed(t *testing.T) {
	// No uniqueness constraint on (technician, date): duplicates sum.
	logs := []DailyHoursEntry{
		{TechName: "Sam Reyes", WorkDate: "2025-03-04", HoursRegular: 3},
		{TechName: "Sam Reyes", WorkDate: "2025-03-04", HoursRegular: 2},
	}
	s := buildSummary(WorkOrder{}, logs, nil)
	if s.TotalHoursRegular != 5 {
		t.Errorf("total RT = %v, want 5", s.TotalHoursRegular)
	}
	if len(s.PerTech) != 1 {
		t.Fatalf("per-tech rollups = %d, want 1", len(s.PerTech))
	}
	if s.PerTech[0].HoursRegular != 5 {
		t.Errorf("per-tech RT = %v, want 5", s.PerTech[0].HoursRegular)
	}
}
