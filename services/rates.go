// Package services provides the cost aggregation and invoice calculation
// engine for work orders, plus the report assembly and rendering code built
// on top of it.
package services

// RateTable holds the billing rates applied to every work order. A value is
// passed explicitly into each calculation; nothing in this package reads
// rates from a global.
type RateTable struct {
	Regular    float64 // $/hour, regular time
	Overtime   float64 // $/hour, overtime
	Mileage    float64 // $/mile
	Markup     float64 // fraction added to cost-plus expense categories
	AdminHours float64 // fixed hours billed per work order at the regular rate
}

// DefaultRates returns the contract rates currently in effect.
func DefaultRates() RateTable {
	return RateTable{
		Regular:    64,
		Overtime:   96,
		Mileage:    1.00,
		Markup:     0.25,
		AdminHours: 2,
	}
}

// LaborCost prices regular and overtime hours.
func (r RateTable) LaborCost(hoursRegular, hoursOvertime float64) float64 {
	return hoursRegular*r.Regular + hoursOvertime*r.Overtime
}

// AdminCost is the fixed administrative charge per work order, independent
// of any hours actually worked.
func (r RateTable) AdminCost() float64 {
	return r.AdminHours * r.Regular
}

// MileageCost prices miles driven.
func (r RateTable) MileageCost(miles float64) float64 {
	return miles * r.Mileage
}

// WithMarkup applies the cost-plus markup to a base expense amount.
func (r RateTable) WithMarkup(base float64) float64 {
	return base * (1 + r.Markup)
}

// MarkupPercent returns the markup as a percentage for display (25 for 0.25).
func (r RateTable) MarkupPercent() float64 {
	return r.Markup * 100
}
