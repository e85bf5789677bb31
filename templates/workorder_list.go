package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// WorkOrderListItem is one row of the dashboard table. Money values arrive
// pre-formatted.
type WorkOrderListItem struct {
	ID           string
	Number       string
	Building     string
	Status       string
	LeadTech     string
	NTE          string
	GrandTotal   string
	Remaining    string
	IsOverBudget bool
}

// StatusCounts feeds the stat cards at the top of the dashboard.
type StatusCounts struct {
	Total       int
	Pending     int
	Assigned    int
	InProgress  int
	Completed   int
	NeedsReturn int
}

// WorkOrderListData is everything the dashboard page needs.
type WorkOrderListData struct {
	Stats StatusCounts
	Items []WorkOrderListItem
}

// WorkOrderListPage renders the work order dashboard.
func WorkOrderListPage(data WorkOrderListData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Work Orders</h1>
<div class="stat-cards">
<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">Total</span></div>
<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">Pending</span></div>
<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">Assigned</span></div>
<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">In Progress</span></div>
<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">Completed</span></div>
<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">Needs Return</span></div>
</div>
<div class="toolbar">
<a class="button" href="/workorders/create">New Work Order</a>
<form method="get" action="/workorders/report/excel" id="report-form">
<button type="submit" class="button">Line Item Report (Excel)</button>
<button type="submit" class="button" formaction="/workorders/report/csv">Line Item Report (CSV)</button>
</form>
</div>
<table class="wo-table">
<thead><tr>
<th></th><th>WO#</th><th>Building</th><th>Status</th><th>Lead Tech</th>
<th class="num">NTE</th><th class="num">Total</th><th class="num">Remaining</th>
</tr></thead>
<tbody>
`,
			data.Stats.Total, data.Stats.Pending, data.Stats.Assigned,
			data.Stats.InProgress, data.Stats.Completed, data.Stats.NeedsReturn); err != nil {
			return err
		}

		for _, item := range data.Items {
			remainingClass := "remaining-ok"
			if item.IsOverBudget {
				remainingClass = "remaining-over"
			}
			if _, err := fmt.Fprintf(w, `<tr>
<td><input type="checkbox" name="ids" value="%s" form="report-form"></td>
<td><a href="/workorders/%s">%s</a></td>
<td>%s</td>
<td><span class="status status-%s">%s</span></td>
<td>%s</td>
<td class="num">%s</td>
<td class="num">%s</td>
<td class="num %s">%s</td>
</tr>
`,
				esc(item.ID), esc(item.ID), esc(item.Number), esc(item.Building),
				esc(item.Status), esc(item.Status), esc(item.LeadTech),
				esc(item.NTE), esc(item.GrandTotal),
				remainingClass, esc(item.Remaining)); err != nil {
				return err
			}
		}

		if len(data.Items) == 0 {
			if _, err := io.WriteString(w, `<tr><td colspan="8" class="empty">No work orders yet.</td></tr>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</tbody>\n</table>\n")
		return err
	})
	return layout("Work Orders", body)
}
