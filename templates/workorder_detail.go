package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// TechTotalsView is one per-technician row of the cost summary section.
type TechTotalsView struct {
	TechName      string
	HoursRegular  string
	HoursOvertime string
	Miles         string
	LaborCost     string
}

// ExpenseView is one expense line with its markup applied.
type ExpenseView struct {
	Label      string
	Base       string
	WithMarkup string
}

// CostSummaryView carries the computed totals, pre-formatted for display.
type CostSummaryView struct {
	SourceLabel  string
	PerTech      []TechTotalsView
	LaborCost    string
	AdminCost    string
	MileageCost  string
	Expenses     []ExpenseView
	GrandTotal   string
	NTE          string
	Remaining    string
	HasNTE       bool
	IsOverBudget bool
}

// DailyHoursView is one daily hours log row.
type DailyHoursView struct {
	ID           string
	TechName     string
	WorkDate     string
	Regular      string
	Overtime     string
	Miles        string
	MaterialCost string
	Notes        string
}

// AssignmentView is one legacy team assignment row.
type AssignmentView struct {
	ID       string
	TechName string
	Regular  string
	Overtime string
	Miles    string
}

// TechOption populates the technician select in the daily hours form.
type TechOption struct {
	ID   string
	Name string
}

// WorkOrderDetailData is everything the detail page needs.
type WorkOrderDetailData struct {
	ID          string
	Number      string
	Building    string
	Status      string
	Description string
	LeadTech    string
	DateEntered string
	Comments    string

	Summary     CostSummaryView
	DailyHours  []DailyHoursView
	Assignments []AssignmentView
	TechOptions []TechOption
	FormErrors  []string
}

// WorkOrderDetailPage renders a single work order with its cost summary,
// daily hours log and legacy assignments.
func WorkOrderDetailPage(data WorkOrderDetailData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="page-head">
<h1>%s <span class="status status-%s">%s</span></h1>
<div class="actions">
<a class="button" href="/workorders/%s/edit">Edit</a>
<a class="button" href="/workorders/%s/invoice.pdf">Invoice PDF</a>
</div>
</div>
<dl class="wo-meta">
<dt>Building</dt><dd>%s</dd>
<dt>Description</dt><dd>%s</dd>
<dt>Lead Tech</dt><dd>%s</dd>
<dt>Date Entered</dt><dd>%s</dd>
<dt>Comments</dt><dd>%s</dd>
</dl>
`,
			esc(data.Number), esc(data.Status), esc(data.Status),
			esc(data.ID), esc(data.ID),
			esc(data.Building), esc(data.Description), esc(data.LeadTech),
			esc(data.DateEntered), esc(data.Comments)); err != nil {
			return err
		}

		if err := costSummarySection(data.Summary).Render(ctx, w); err != nil {
			return err
		}
		if err := dailyHoursSection(data).Render(ctx, w); err != nil {
			return err
		}
		return assignmentsSection(data).Render(ctx, w)
	})
	return layout("WO "+data.Number, body)
}

func costSummarySection(s CostSummaryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="cost-summary">
<h2>Cost Summary <span class="source-label">%s</span></h2>
<table>
<thead><tr><th>Technician</th><th class="num">RT</th><th class="num">OT</th><th class="num">Miles</th><th class="num">Labor</th></tr></thead>
<tbody>
`, esc(s.SourceLabel)); err != nil {
			return err
		}

		for _, tt := range s.PerTech {
			if _, err := fmt.Fprintf(w,
				"<tr><td>%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td><td class=\"num\">%s</td></tr>\n",
				esc(tt.TechName), esc(tt.HoursRegular), esc(tt.HoursOvertime),
				esc(tt.Miles), esc(tt.LaborCost)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</tbody>
</table>
<table class="totals">
<tr><td>Labor</td><td class="num">%s</td></tr>
<tr><td>Admin (office hours)</td><td class="num">%s</td></tr>
<tr><td>Mileage</td><td class="num">%s</td></tr>
`, esc(s.LaborCost), esc(s.AdminCost), esc(s.MileageCost)); err != nil {
			return err
		}

		for _, e := range s.Expenses {
			if _, err := fmt.Fprintf(w,
				"<tr><td>%s (base %s)</td><td class=\"num\">%s</td></tr>\n",
				esc(e.Label), esc(e.Base), esc(e.WithMarkup)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w,
			"<tr class=\"grand\"><td>Grand Total</td><td class=\"num\">%s</td></tr>\n",
			esc(s.GrandTotal)); err != nil {
			return err
		}

		if s.HasNTE {
			remainingClass := "remaining-ok"
			if s.IsOverBudget {
				remainingClass = "remaining-over"
			}
			if _, err := fmt.Fprintf(w, `<tr><td>NTE</td><td class="num">%s</td></tr>
<tr><td>Remaining</td><td class="num %s">%s</td></tr>
`, esc(s.NTE), remainingClass, esc(s.Remaining)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</table>\n</section>\n")
		return err
	})
}

func dailyHoursSection(data WorkOrderDetailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="daily-hours">
<h2>Daily Hours Log</h2>
<table>
<thead><tr><th>Date</th><th>Technician</th><th class="num">RT</th><th class="num">OT</th><th class="num">Miles</th><th class="num">Material</th><th>Notes</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, dh := range data.DailyHours {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s</td>
<td class="num">%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td>
<td>%s</td>
<td><form method="post" action="/workorders/%s/hours/%s/delete"><button type="submit" class="link-button">Remove</button></form></td>
</tr>
`,
				esc(dh.WorkDate), esc(dh.TechName),
				esc(dh.Regular), esc(dh.Overtime), esc(dh.Miles), esc(dh.MaterialCost),
				esc(dh.Notes), esc(data.ID), esc(dh.ID)); err != nil {
				return err
			}
		}
		if len(data.DailyHours) == 0 {
			if _, err := io.WriteString(w, `<tr><td colspan="8" class="empty">No daily hours logged.</td></tr>
`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</tbody>\n</table>\n"); err != nil {
			return err
		}

		for _, msg := range data.FormErrors {
			if _, err := fmt.Fprintf(w, "<p class=\"form-error\">%s</p>\n", esc(msg)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="/workorders/%s/hours" class="inline-form">
<select name="technician" required>
<option value="">Technician…</option>
`, esc(data.ID)); err != nil {
			return err
		}
		for _, opt := range data.TechOptions {
			if _, err := fmt.Fprintf(w, "<option value=\"%s\">%s</option>\n",
				esc(opt.ID), esc(opt.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select>
<input type="date" name="work_date" required>
<input type="number" name="hours_regular" step="0.25" min="0" placeholder="RT">
<input type="number" name="hours_overtime" step="0.25" min="0" placeholder="OT">
<input type="number" name="miles" step="0.1" min="0" placeholder="Miles">
<input type="number" name="material_cost" step="0.01" min="0" placeholder="Material $">
<input type="text" name="notes" placeholder="Notes">
<button type="submit" class="button">Log Hours</button>
</form>
</section>
`)
		return err
	})
}

func assignmentsSection(data WorkOrderDetailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="assignments">
<h2>Team Assignments (legacy)</h2>
<table>
<thead><tr><th>Technician</th><th class="num">RT</th><th class="num">OT</th><th class="num">Miles</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, a := range data.Assignments {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td>
<td><form method="post" action="/workorders/%s/assignments/%s/delete"><button type="submit" class="link-button">Remove</button></form></td>
</tr>
`,
				esc(a.TechName), esc(a.Regular), esc(a.Overtime), esc(a.Miles),
				esc(data.ID), esc(a.ID)); err != nil {
				return err
			}
		}
		if len(data.Assignments) == 0 {
			if _, err := io.WriteString(w, `<tr><td colspan="5" class="empty">No team assignments.</td></tr>
`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tbody>\n</table>\n"); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="/workorders/%s/assignments" class="inline-form">
<select name="technician" required>
<option value="">Technician…</option>
`, esc(data.ID)); err != nil {
			return err
		}
		for _, opt := range data.TechOptions {
			if _, err := fmt.Fprintf(w, "<option value=\"%s\">%s</option>\n",
				esc(opt.ID), esc(opt.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select>
<input type="number" name="hours_regular" step="0.25" min="0" placeholder="RT">
<input type="number" name="hours_overtime" step="0.25" min="0" placeholder="OT">
<input type="number" name="miles" step="0.1" min="0" placeholder="Miles">
<button type="submit" class="button">Add Assignment</button>
</form>
</section>
`)
		return err
	})
}
