package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/services"
	"fieldservice/templates"
)

// HandleWorkOrderList returns a handler that renders the work order
// dashboard with status counts and computed totals per order.
func HandleWorkOrderList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orders, err := services.ListWorkOrders(app)
		if err != nil {
			log.Printf("workorder_list: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		rates := services.DefaultRates()
		ids := make([]string, len(orders))
		for i, wo := range orders {
			ids[i] = wo.ID
		}

		var bundles []services.WorkOrderBundle
		if len(ids) > 0 {
			bundles, err = services.LoadWorkOrderBundles(app, ids)
			if err != nil {
				log.Printf("workorder_list: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
		}

		items := make([]templates.WorkOrderListItem, 0, len(bundles))
		for _, b := range bundles {
			labor := services.ReconcileLaborSource(b.WorkOrder, b.DailyLogs, b.Assignments)
			summary := services.BuildCostSummary(b.WorkOrder, labor, rates)
			budget := services.EvaluateBudget(summary.GrandTotal, b.WorkOrder.NTE)

			item := templates.WorkOrderListItem{
				ID:           b.WorkOrder.ID,
				Number:       b.WorkOrder.Number,
				Building:     b.WorkOrder.Building,
				Status:       b.WorkOrder.Status,
				LeadTech:     b.WorkOrder.LeadTechName,
				GrandTotal:   services.FormatUSD(summary.GrandTotal),
				IsOverBudget: budget.IsOverBudget,
			}
			if b.WorkOrder.NTE > 0 {
				item.NTE = services.FormatUSD(b.WorkOrder.NTE)
				item.Remaining = services.FormatUSD(budget.Remaining)
			}
			items = append(items, item)
		}

		stats := services.CalcStats(orders)
		data := templates.WorkOrderListData{
			Stats: templates.StatusCounts{
				Total:       stats.Total,
				Pending:     stats.Pending,
				Assigned:    stats.Assigned,
				InProgress:  stats.InProgress,
				Completed:   stats.Completed,
				NeedsReturn: stats.NeedsReturn,
			},
			Items: items,
		}

		component := templates.WorkOrderListPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}
