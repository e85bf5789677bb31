package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/services"
	"fieldservice/templates"
)

// HandleWorkOrderView returns a handler that renders one work order with its
// computed cost summary, daily hours log and legacy assignments.
func HandleWorkOrderView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		if woID == "" {
			return e.String(http.StatusBadRequest, "Missing work order ID")
		}

		data, err := buildDetailData(app, woID, nil)
		if err != nil {
			log.Printf("workorder_view: %v", err)
			return e.String(http.StatusNotFound, "Work order not found")
		}

		component := templates.WorkOrderDetailPage(*data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildDetailData fetches the bundle, runs the cost engine and shapes the
// result for the detail template. formErrors are surfaced next to the daily
// hours form after a rejected submission.
func buildDetailData(app *pocketbase.PocketBase, woID string, formErrors []string) (*templates.WorkOrderDetailData, error) {
	bundle, err := services.LoadWorkOrderBundle(app, woID)
	if err != nil {
		return nil, err
	}

	rates := services.DefaultRates()
	labor := services.ReconcileLaborSource(bundle.WorkOrder, bundle.DailyLogs, bundle.Assignments)
	summary := services.BuildCostSummary(bundle.WorkOrder, labor, rates)
	budget := services.EvaluateBudget(summary.GrandTotal, bundle.WorkOrder.NTE)

	techOptions, err := loadTechOptions(app)
	if err != nil {
		return nil, err
	}

	data := &templates.WorkOrderDetailData{
		ID:          bundle.WorkOrder.ID,
		Number:      bundle.WorkOrder.Number,
		Building:    bundle.WorkOrder.Building,
		Status:      bundle.WorkOrder.Status,
		Description: bundle.WorkOrder.Description,
		LeadTech:    bundle.WorkOrder.LeadTechName,
		DateEntered: bundle.WorkOrder.DateEntered,
		Comments:    bundle.WorkOrder.Comments,
		Summary:     buildCostSummaryView(bundle.WorkOrder, summary, budget),
		TechOptions: techOptions,
		FormErrors:  formErrors,
	}

	for _, dh := range bundle.DailyLogs {
		data.DailyHours = append(data.DailyHours, templates.DailyHoursView{
			ID:           dh.ID,
			TechName:     dh.TechName,
			WorkDate:     dh.WorkDate,
			Regular:      services.FormatHours(dh.HoursRegular),
			Overtime:     services.FormatHours(dh.HoursOvertime),
			Miles:        services.FormatHours(dh.Miles),
			MaterialCost: formatOptionalUSD(dh.MaterialCost),
			Notes:        dh.Notes,
		})
	}
	for _, a := range bundle.Assignments {
		data.Assignments = append(data.Assignments, templates.AssignmentView{
			ID:       a.ID,
			TechName: a.TechName,
			Regular:  services.FormatHours(a.HoursRegular),
			Overtime: services.FormatHours(a.HoursOvertime),
			Miles:    services.FormatHours(a.Miles),
		})
	}

	return data, nil
}

func buildCostSummaryView(wo services.WorkOrder, summary services.CostSummary, budget services.BudgetStatus) templates.CostSummaryView {
	sourceLabel := "legacy work order fields"
	if summary.Source == services.SourceDailyLog {
		sourceLabel = "daily hours log"
	}

	view := templates.CostSummaryView{
		SourceLabel:  sourceLabel,
		LaborCost:    services.FormatUSD(summary.LaborCost),
		AdminCost:    services.FormatUSD(summary.AdminCost),
		MileageCost:  services.FormatUSD(summary.MileageCost),
		GrandTotal:   services.FormatUSD(summary.GrandTotal),
		HasNTE:       wo.NTE > 0,
		NTE:          services.FormatUSD(wo.NTE),
		Remaining:    services.FormatUSD(budget.Remaining),
		IsOverBudget: budget.IsOverBudget,
	}

	for _, tt := range summary.PerTech {
		view.PerTech = append(view.PerTech, templates.TechTotalsView{
			TechName:      tt.TechName,
			HoursRegular:  services.FormatHours(tt.HoursRegular),
			HoursOvertime: services.FormatHours(tt.HoursOvertime),
			Miles:         services.FormatHours(tt.Miles),
			LaborCost:     services.FormatUSD(tt.LaborCost),
		})
	}

	expenses := []struct {
		label            string
		base, withMarkup float64
	}{
		{"Materials", summary.MaterialBase, summary.MaterialWithMarkup},
		{"Tech Materials (reimbursed)", summary.TechMaterialBase, summary.TechMaterialWithMarkup},
		{"Equipment", summary.EquipmentBase, summary.EquipmentWithMarkup},
		{"Trailer", summary.TrailerBase, summary.TrailerWithMarkup},
		{"Equipment Rental", summary.RentalBase, summary.RentalWithMarkup},
	}
	for _, ex := range expenses {
		if ex.base <= 0 {
			continue
		}
		view.Expenses = append(view.Expenses, templates.ExpenseView{
			Label:      ex.label,
			Base:       services.FormatUSD(ex.base),
			WithMarkup: services.FormatUSD(ex.withMarkup),
		})
	}

	return view
}

func loadTechOptions(app *pocketbase.PocketBase) ([]templates.TechOption, error) {
	names, err := services.LoadTechNames(app)
	if err != nil {
		return nil, fmt.Errorf("could not load technician options: %w", err)
	}
	options := make([]templates.TechOption, 0, len(names))
	for id, name := range names {
		options = append(options, templates.TechOption{ID: id, Name: name})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })
	return options, nil
}

func formatOptionalUSD(v float64) string {
	if v == 0 {
		return ""
	}
	return services.FormatUSD(v)
}
