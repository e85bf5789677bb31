package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/templates"
)

var statusOptions = []string{"pending", "assigned", "in_progress", "completed", "needs_return"}

// HandleWorkOrderCreate returns a handler that renders the creation form.
func HandleWorkOrderCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		techOptions, err := loadTechOptions(app)
		if err != nil {
			log.Printf("workorder_create: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		data := templates.WorkOrderFormData{
			Status:        "pending",
			DateEntered:   time.Now().Format("2006-01-02"),
			StatusOptions: statusOptions,
			TechOptions:   techOptions,
			Errors:        make(map[string]string),
		}
		component := templates.WorkOrderFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleWorkOrderSave returns a handler that processes the creation form.
func HandleWorkOrderSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("workorder_create: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		form, errors := readWorkOrderForm(e)

		if form.Number != "" {
			existing, _ := app.FindRecordsByFilter("work_orders", "wo_number = {:num}", "", 1, 0,
				map[string]any{"num": form.Number})
			if len(existing) > 0 {
				errors["wo_number"] = "A work order with this number already exists"
			}
		}

		if len(errors) > 0 {
			techOptions, err := loadTechOptions(app)
			if err != nil {
				log.Printf("workorder_create: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			form.StatusOptions = statusOptions
			form.TechOptions = techOptions
			form.Errors = errors
			component := templates.WorkOrderFormPage(form)
			return component.Render(e.Request.Context(), e.Response)
		}

		woCol, err := app.FindCollectionByNameOrId("work_orders")
		if err != nil {
			log.Printf("workorder_create: could not find work_orders collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(woCol)
		applyWorkOrderForm(record, form)

		if err := app.Save(record); err != nil {
			log.Printf("workorder_create: could not save work order: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		return e.Redirect(http.StatusFound, "/workorders/"+record.Id)
	}
}

// readWorkOrderForm pulls the shared create/edit fields out of the request
// and validates them. Numeric fields keep the raw string so a rejected form
// echoes the user's input.
func readWorkOrderForm(e *core.RequestEvent) (templates.WorkOrderFormData, map[string]string) {
	form := templates.WorkOrderFormData{
		Number:        strings.TrimSpace(e.Request.FormValue("wo_number")),
		Building:      strings.TrimSpace(e.Request.FormValue("building")),
		Status:        e.Request.FormValue("status"),
		Description:   strings.TrimSpace(e.Request.FormValue("description")),
		NTE:           strings.TrimSpace(e.Request.FormValue("nte")),
		MaterialCost:  strings.TrimSpace(e.Request.FormValue("material_cost")),
		EquipmentCost: strings.TrimSpace(e.Request.FormValue("equipment_cost")),
		TrailerCost:   strings.TrimSpace(e.Request.FormValue("trailer_cost")),
		RentalCost:    strings.TrimSpace(e.Request.FormValue("rental_cost")),
		HoursRegular:  strings.TrimSpace(e.Request.FormValue("hours_regular")),
		HoursOvertime: strings.TrimSpace(e.Request.FormValue("hours_overtime")),
		Miles:         strings.TrimSpace(e.Request.FormValue("miles")),
		LeadTech:      e.Request.FormValue("lead_tech"),
		Comments:      strings.TrimSpace(e.Request.FormValue("comments")),
		DateEntered:   strings.TrimSpace(e.Request.FormValue("date_entered")),
	}

	errors := make(map[string]string)
	if form.Number == "" {
		errors["wo_number"] = "WO number is required"
	}
	if form.Building == "" {
		errors["building"] = "Building is required"
	}
	if !validStatus(form.Status) {
		errors["status"] = "Unknown status"
	}

	numeric := map[string]string{
		"nte":            form.NTE,
		"material_cost":  form.MaterialCost,
		"equipment_cost": form.EquipmentCost,
		"trailer_cost":   form.TrailerCost,
		"rental_cost":    form.RentalCost,
		"hours_regular":  form.HoursRegular,
		"hours_overtime": form.HoursOvertime,
		"miles":          form.Miles,
	}
	for name, raw := range numeric {
		v, err := parseFormFloat(raw)
		if err != nil {
			errors[name] = "Must be a number"
		} else if v < 0 {
			errors[name] = "Cannot be negative"
		}
	}

	return form, errors
}

// applyWorkOrderForm writes validated form values onto a record. Numeric
// fields are already known to parse.
func applyWorkOrderForm(record *core.Record, form templates.WorkOrderFormData) {
	record.Set("wo_number", form.Number)
	record.Set("building", form.Building)
	record.Set("status", form.Status)
	record.Set("description", form.Description)
	record.Set("lead_tech", form.LeadTech)
	record.Set("comments", form.Comments)
	record.Set("date_entered", form.DateEntered)

	numeric := map[string]string{
		"nte":            form.NTE,
		"material_cost":  form.MaterialCost,
		"equipment_cost": form.EquipmentCost,
		"trailer_cost":   form.TrailerCost,
		"rental_cost":    form.RentalCost,
		"hours_regular":  form.HoursRegular,
		"hours_overtime": form.HoursOvertime,
		"miles":          form.Miles,
	}
	for name, raw := range numeric {
		v, _ := parseFormFloat(raw)
		record.Set(name, v)
	}
}

// parseFormFloat treats an empty field as zero.
func parseFormFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func validStatus(s string) bool {
	for _, opt := range statusOptions {
		if s == opt {
			return true
		}
	}
	return false
}
