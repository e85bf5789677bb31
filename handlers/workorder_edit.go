package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/templates"
)

// HandleWorkOrderEdit returns a handler that renders the edit form
// pre-populated from the stored record.
func HandleWorkOrderEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		record, err := app.FindRecordById("work_orders", woID)
		if err != nil {
			return e.String(http.StatusNotFound, "Work order not found")
		}

		techOptions, err := loadTechOptions(app)
		if err != nil {
			log.Printf("workorder_edit: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		data := templates.WorkOrderFormData{
			IsEdit:        true,
			ID:            record.Id,
			Number:        record.GetString("wo_number"),
			Building:      record.GetString("building"),
			Status:        record.GetString("status"),
			Description:   record.GetString("description"),
			NTE:           formatFormFloat(record.GetFloat("nte")),
			MaterialCost:  formatFormFloat(record.GetFloat("material_cost")),
			EquipmentCost: formatFormFloat(record.GetFloat("equipment_cost")),
			TrailerCost:   formatFormFloat(record.GetFloat("trailer_cost")),
			RentalCost:    formatFormFloat(record.GetFloat("rental_cost")),
			HoursRegular:  formatFormFloat(record.GetFloat("hours_regular")),
			HoursOvertime: formatFormFloat(record.GetFloat("hours_overtime")),
			Miles:         formatFormFloat(record.GetFloat("miles")),
			LeadTech:      record.GetString("lead_tech"),
			Comments:      record.GetString("comments"),
			DateEntered:   record.GetString("date_entered"),
			StatusOptions: statusOptions,
			TechOptions:   techOptions,
			Errors:        make(map[string]string),
		}

		component := templates.WorkOrderFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleWorkOrderUpdate returns a handler that processes the edit form.
func HandleWorkOrderUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		record, err := app.FindRecordById("work_orders", woID)
		if err != nil {
			return e.String(http.StatusNotFound, "Work order not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			log.Printf("workorder_edit: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		form, errors := readWorkOrderForm(e)
		form.IsEdit = true
		form.ID = record.Id

		if form.Number != "" && form.Number != record.GetString("wo_number") {
			existing, _ := app.FindRecordsByFilter("work_orders", "wo_number = {:num}", "", 1, 0,
				map[string]any{"num": form.Number})
			if len(existing) > 0 {
				errors["wo_number"] = "A work order with this number already exists"
			}
		}

		if len(errors) > 0 {
			techOptions, err := loadTechOptions(app)
			if err != nil {
				log.Printf("workorder_edit: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			form.StatusOptions = statusOptions
			form.TechOptions = techOptions
			form.Errors = errors
			component := templates.WorkOrderFormPage(form)
			return component.Render(e.Request.Context(), e.Response)
		}

		applyWorkOrderForm(record, form)

		if err := app.Save(record); err != nil {
			log.Printf("workorder_edit: could not save work order: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.Redirect(http.StatusFound, "/workorders/"+record.Id)
	}
}

// HandleWorkOrderDelete returns a handler that removes a work order. Daily
// hours and assignment rows cascade with it.
func HandleWorkOrderDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		record, err := app.FindRecordById("work_orders", woID)
		if err != nil {
			return e.String(http.StatusNotFound, "Work order not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("workorder_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.Redirect(http.StatusFound, "/workorders")
	}
}

// formatFormFloat renders a stored number for a form input, leaving zero
// blank.
func formatFormFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%g", v)
}
