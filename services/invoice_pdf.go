package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// InvoiceData holds everything needed to render a single work order's
// invoice PDF.
type InvoiceData struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string

	WorkOrder WorkOrder
	Summary   CostSummary
	Budget    BudgetStatus
	Rates     RateTable
}

// GenerateInvoicePDF renders an invoice for one work order using maroto/v2
// and returns the raw PDF bytes.
func GenerateInvoicePDF(data *InvoiceData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, data)
	addWorkOrderBlock(m, data)
	addLaborTable(m, data)
	addExpenseTable(m, data)
	addInvoiceTotals(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addInvoiceHeader(m core.Maroto, data *InvoiceData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("INVOICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", data.CompanyAddress, data.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("WO #: %s", data.WorkOrder.Number), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

func addWorkOrderBlock(m core.Maroto, data *InvoiceData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{Size: 8, Align: align.Left}

	wo := data.WorkOrder
	rows := []struct{ label, value string }{
		{"BUILDING", wo.Building},
		{"DESCRIPTION", wo.Description},
		{"LEAD TECH", wo.LeadTechName},
		{"DATE ENTERED", wo.DateEntered},
		{"STATUS", wo.Status},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		m.AddRows(
			row.New(5).Add(
				col.New(3).Add(text.New(r.label, labelStyle)),
				col.New(9).Add(text.New(r.value, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addLaborTable(m core.Maroto, data *InvoiceData) {
	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	cellStyle := props.Text{Size: 8, Align: align.Left}
	amountStyle := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New("LABOR", headerStyle)),
			col.New(2).Add(text.New("Hours RT", headerStyle)),
			col.New(2).Add(text.New("Hours OT", headerStyle)),
			col.New(2).Add(text.New("Miles", headerStyle)),
			col.New(2).Add(text.New("Amount", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		),
	)

	for _, tt := range data.Summary.PerTech {
		m.AddRows(
			row.New(5).Add(
				col.New(4).Add(text.New(tt.TechName, cellStyle)),
				col.New(2).Add(text.New(fmt.Sprintf("%.2f", tt.HoursRegular), cellStyle)),
				col.New(2).Add(text.New(fmt.Sprintf("%.2f", tt.HoursOvertime), cellStyle)),
				col.New(2).Add(text.New(fmt.Sprintf("%.1f", tt.Miles), cellStyle)),
				col.New(2).Add(text.New(FormatUSD(tt.LaborCost), amountStyle)),
			),
		)
	}

	// Fixed admin hours line, always billed.
	m.AddRows(
		row.New(5).Add(
			col.New(4).Add(text.New("Office (admin hours)", cellStyle)),
			col.New(2).Add(text.New(fmt.Sprintf("%.2f", data.Rates.AdminHours), cellStyle)),
			col.New(2).Add(text.New("", cellStyle)),
			col.New(2).Add(text.New("", cellStyle)),
			col.New(2).Add(text.New(FormatUSD(data.Summary.AdminCost), amountStyle)),
		),
	)

	if data.Summary.MileageCost > 0 {
		m.AddRows(
			row.New(5).Add(
				col.New(10).Add(text.New(fmt.Sprintf("Mileage (%.1f miles)", data.Summary.TotalMiles), cellStyle)),
				col.New(2).Add(text.New(FormatUSD(data.Summary.MileageCost), amountStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addExpenseTable(m core.Maroto, data *InvoiceData) {
	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	cellStyle := props.Text{Size: 8, Align: align.Left}
	amountStyle := props.Text{Size: 8, Align: align.Right}

	s := data.Summary
	expenses := []struct {
		label      string
		base       float64
		withMarkup float64
	}{
		{"Materials", s.MaterialBase, s.MaterialWithMarkup},
		{"Tech Materials (reimbursed)", s.TechMaterialBase, s.TechMaterialWithMarkup},
		{"Equipment", s.EquipmentBase, s.EquipmentWithMarkup},
		{"Trailer", s.TrailerBase, s.TrailerWithMarkup},
		{"Equipment Rental", s.RentalBase, s.RentalWithMarkup},
	}

	hasExpenses := false
	for _, e := range expenses {
		if e.base > 0 {
			hasExpenses = true
			break
		}
	}
	if !hasExpenses {
		return
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("EXPENSES", headerStyle)),
			col.New(2).Add(text.New("Base", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
			col.New(2).Add(text.New("Markup", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
			col.New(2).Add(text.New("Total", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		),
	)

	for _, e := range expenses {
		if e.base <= 0 {
			continue
		}
		m.AddRows(
			row.New(5).Add(
				col.New(6).Add(text.New(e.label, cellStyle)),
				col.New(2).Add(text.New(FormatUSD(e.base), amountStyle)),
				col.New(2).Add(text.New(FormatUSD(e.withMarkup-e.base), amountStyle)),
				col.New(2).Add(text.New(FormatUSD(e.withMarkup), amountStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addInvoiceTotals(m core.Maroto, data *InvoiceData) {
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("GRAND TOTAL:", labelStyle)),
			col.New(3).Add(text.New(FormatUSD(data.Summary.GrandTotal), valueStyle)),
		),
	)

	if data.WorkOrder.NTE > 0 {
		m.AddRows(
			row.New(5).Add(
				col.New(9).Add(text.New("NTE:", props.Text{Size: 8, Align: align.Right})),
				col.New(3).Add(text.New(FormatUSD(data.WorkOrder.NTE), props.Text{Size: 8, Align: align.Right})),
			),
		)

		remainingColor := &props.Color{Red: 40, Green: 120, Blue: 40}
		if data.Budget.IsOverBudget {
			remainingColor = &props.Color{Red: 180, Green: 40, Blue: 40}
		}
		m.AddRows(
			row.New(5).Add(
				col.New(9).Add(text.New("Remaining:", props.Text{Size: 8, Align: align.Right})),
				col.New(3).Add(text.New(FormatUSD(data.Budget.Remaining), props.Text{
					Size:  8,
					Align: align.Right,
					Color: remainingColor,
				})),
			),
		)
	}
}
