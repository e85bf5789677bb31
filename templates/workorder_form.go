package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// WorkOrderFormData backs both the create and the edit form. Numeric values
// arrive as strings so a rejected submission can echo exactly what the user
// typed.
type WorkOrderFormData struct {
	IsEdit bool
	ID     string

	Number        string
	Building      string
	Status        string
	Description   string
	NTE           string
	MaterialCost  string
	EquipmentCost string
	TrailerCost   string
	RentalCost    string
	HoursRegular  string
	HoursOvertime string
	Miles         string
	LeadTech      string
	Comments      string
	DateEntered   string

	StatusOptions []string
	TechOptions   []TechOption
	Errors        map[string]string
}

// WorkOrderFormPage renders the create/edit form for a work order.
func WorkOrderFormPage(data WorkOrderFormData) templ.Component {
	title := "New Work Order"
	action := "/workorders"
	if data.IsEdit {
		title = "Edit " + data.Number
		action = "/workorders/" + data.ID + "/save"
	}

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>\n<form method=\"post\" action=\"%s\" class=\"wo-form\">\n",
			esc(title), esc(action)); err != nil {
			return err
		}

		if err := textField(w, "wo_number", "WO Number", data.Number, data.Errors); err != nil {
			return err
		}
		if err := textField(w, "building", "Building", data.Building, data.Errors); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<label>Status
<select name="status">
`); err != nil {
			return err
		}
		for _, s := range data.StatusOptions {
			selected := ""
			if s == data.Status {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n", esc(s), selected, esc(s)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</select>\n</label>\n"); err != nil {
			return err
		}

		if err := textField(w, "description", "Description", data.Description, data.Errors); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<label>Lead Tech
<select name="lead_tech">
<option value="">None</option>
`); err != nil {
			return err
		}
		for _, opt := range data.TechOptions {
			selected := ""
			if opt.ID == data.LeadTech {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n",
				esc(opt.ID), selected, esc(opt.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</select>\n</label>\n"); err != nil {
			return err
		}

		numbers := []struct{ name, label, value string }{
			{"nte", "NTE ($)", data.NTE},
			{"material_cost", "Material Cost ($)", data.MaterialCost},
			{"equipment_cost", "Equipment Cost ($)", data.EquipmentCost},
			{"trailer_cost", "Trailer Cost ($)", data.TrailerCost},
			{"rental_cost", "Rental Cost ($)", data.RentalCost},
			{"hours_regular", "Lead Hours RT", data.HoursRegular},
			{"hours_overtime", "Lead Hours OT", data.HoursOvertime},
			{"miles", "Lead Miles", data.Miles},
		}
		for _, n := range numbers {
			if err := numberField(w, n.name, n.label, n.value, data.Errors); err != nil {
				return err
			}
		}

		if err := textField(w, "date_entered", "Date Entered (YYYY-MM-DD)", data.DateEntered, data.Errors); err != nil {
			return err
		}
		if err := textField(w, "comments", "Comments", data.Comments, data.Errors); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<button type="submit" class="button">Save</button>
<a href="/workorders" class="button secondary">Cancel</a>
</form>
`)
		return err
	})
	return layout(title, body)
}

func textField(w io.Writer, name, label, value string, errors map[string]string) error {
	if _, err := fmt.Fprintf(w,
		"<label>%s\n<input type=\"text\" name=\"%s\" value=\"%s\">\n</label>\n",
		esc(label), esc(name), esc(value)); err != nil {
		return err
	}
	return fieldError(w, name, errors)
}

func numberField(w io.Writer, name, label, value string, errors map[string]string) error {
	if _, err := fmt.Fprintf(w,
		"<label>%s\n<input type=\"number\" name=\"%s\" value=\"%s\" step=\"0.01\" min=\"0\">\n</label>\n",
		esc(label), esc(name), esc(value)); err != nil {
		return err
	}
	return fieldError(w, name, errors)
}

func fieldError(w io.Writer, name string, errors map[string]string) error {
	msg, ok := errors[name]
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "<p class=\"form-error\">%s</p>\n", esc(msg))
	return err
}
