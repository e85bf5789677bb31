package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/services"
	"fieldservice/templates"
)

// HandleDailyHoursSave returns a handler that records a technician's daily
// hours against a work order. Invalid submissions re-render the detail page
// with the problems listed next to the form.
func HandleDailyHoursSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("work_orders", woID); err != nil {
			return e.String(http.StatusNotFound, "Work order not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			log.Printf("daily_hours: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		techID := e.Request.FormValue("technician")
		entry := services.DailyHoursEntry{
			WorkOrderID:  woID,
			TechnicianID: techID,
			WorkDate:     strings.TrimSpace(e.Request.FormValue("work_date")),
			Notes:        strings.TrimSpace(e.Request.FormValue("notes")),
		}

		var problems []string
		for name, dst := range map[string]*float64{
			"hours_regular":  &entry.HoursRegular,
			"hours_overtime": &entry.HoursOvertime,
			"miles":          &entry.Miles,
			"material_cost":  &entry.MaterialCost,
		} {
			v, err := parseFormFloat(e.Request.FormValue(name))
			if err != nil {
				problems = append(problems, name+" must be a number")
				continue
			}
			*dst = v
		}

		if techID == "" {
			problems = append(problems, "Technician is required")
		} else if _, err := app.FindRecordById("technicians", techID); err != nil {
			problems = append(problems, "Unknown technician")
		}

		problems = append(problems, services.ValidateHoursEntry(entry)...)

		if len(problems) > 0 {
			data, err := buildDetailData(app, woID, problems)
			if err != nil {
				log.Printf("daily_hours: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			component := templates.WorkOrderDetailPage(*data)
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("daily_hours_log")
		if err != nil {
			log.Printf("daily_hours: could not find daily_hours_log collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		record.Set("work_order", woID)
		record.Set("technician", techID)
		record.Set("work_date", entry.WorkDate)
		record.Set("hours_regular", entry.HoursRegular)
		record.Set("hours_overtime", entry.HoursOvertime)
		record.Set("miles", entry.Miles)
		record.Set("material_cost", entry.MaterialCost)
		record.Set("notes", entry.Notes)

		if err := app.Save(record); err != nil {
			log.Printf("daily_hours: could not save entry: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.Redirect(http.StatusFound, "/workorders/"+woID)
	}
}

// HandleDailyHoursDelete returns a handler that removes one daily hours row.
func HandleDailyHoursDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		entryID := e.Request.PathValue("entryId")

		record, err := app.FindRecordById("daily_hours_log", entryID)
		if err != nil {
			return e.String(http.StatusNotFound, "Entry not found")
		}
		if record.GetString("work_order") != woID {
			return e.String(http.StatusNotFound, "Entry not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("daily_hours: could not delete entry: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.Redirect(http.StatusFound, "/workorders/"+woID)
	}
}

// HandleAssignmentSave returns a handler that adds a legacy team assignment
// row. Kept for records still maintained on the old tracking model; once a
// work order has daily hours rows these no longer affect its totals.
func HandleAssignmentSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("work_orders", woID); err != nil {
			return e.String(http.StatusNotFound, "Work order not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			log.Printf("assignments: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		techID := e.Request.FormValue("technician")
		if techID == "" {
			return e.String(http.StatusBadRequest, "Technician is required")
		}
		if _, err := app.FindRecordById("technicians", techID); err != nil {
			return e.String(http.StatusBadRequest, "Unknown technician")
		}

		values := make(map[string]float64, 3)
		for _, name := range []string{"hours_regular", "hours_overtime", "miles"} {
			v, err := parseFormFloat(e.Request.FormValue(name))
			if err != nil || v < 0 {
				return e.String(http.StatusBadRequest, "Hours and miles must be non-negative numbers")
			}
			values[name] = v
		}

		col, err := app.FindCollectionByNameOrId("work_order_assignments")
		if err != nil {
			log.Printf("assignments: could not find collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		record.Set("work_order", woID)
		record.Set("technician", techID)
		for name, v := range values {
			record.Set(name, v)
		}

		if err := app.Save(record); err != nil {
			log.Printf("assignments: could not save: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.Redirect(http.StatusFound, "/workorders/"+woID)
	}
}

// HandleAssignmentDelete returns a handler that removes a legacy assignment
// row.
func HandleAssignmentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		assignmentID := e.Request.PathValue("assignmentId")

		record, err := app.FindRecordById("work_order_assignments", assignmentID)
		if err != nil {
			return e.String(http.StatusNotFound, "Assignment not found")
		}
		if record.GetString("work_order") != woID {
			return e.String(http.StatusNotFound, "Assignment not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("assignments: could not delete: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.Redirect(http.StatusFound, "/workorders/"+woID)
	}
}
