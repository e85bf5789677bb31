package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"fieldservice/testhelpers"
)

func TestHandleDailyHoursSave_CreatesEntry(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	tech := testhelpers.CreateTestTechnician(t, app, "Sam Reyes")
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-830", nil)

	form := url.Values{
		"technician":    {tech.Id},
		"work_date":     {"2025-03-04"},
		"hours_regular": {"7.5"},
		"miles":         {"18"},
		"material_cost": {"12.40"},
		"notes":         {"Belt replaced"},
	}
	handler := HandleDailyHoursSave(app)
	req := newFormRequest("/workorders/"+wo.Id+"/hours", form)
	req.SetPathValue("id", wo.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}

	entries, _ := app.FindAllRecords("daily_hours_log")
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	saved := entries[0]
	if saved.GetFloat("hours_regular") != 7.5 || saved.GetString("work_date") != "2025-03-04" {
		t.Errorf("saved = %v / %v", saved.GetFloat("hours_regular"), saved.GetString("work_date"))
	}
	if saved.GetFloat("material_cost") != 12.40 {
		t.Errorf("material_cost = %v, want 12.40", saved.GetFloat("material_cost"))
	}
}

func TestHandleDailyHoursSave_RejectsInvalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	tech := testhelpers.CreateTestTechnician(t, app, "Sam Reyes")
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-831", nil)

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			"missing date",
			url.Values{"technician": {tech.Id}, "hours_regular": {"8"}},
			"Work date is required",
		},
		{
			"no hours or miles",
			url.Values{"technician": {tech.Id}, "work_date": {"2025-03-04"}},
			"at least hours or miles",
		},
		{
			"over 24 hours",
			url.Values{"technician": {tech.Id}, "work_date": {"2025-03-04"}, "hours_regular": {"25"}},
			"cannot exceed 24",
		},
		{
			"missing technician",
			url.Values{"work_date": {"2025-03-04"}, "hours_regular": {"8"}},
			"Technician is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := HandleDailyHoursSave(app)
			req := newFormRequest("/workorders/"+wo.Id+"/hours", tt.form)
			req.SetPathValue("id", wo.Id)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)
			if err := handler(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.want)
		})
	}

	entries, _ := app.FindAllRecords("daily_hours_log")
	if len(entries) != 0 {
		t.Errorf("no entries should be created, got %d", len(entries))
	}
}

func TestHandleDailyHoursDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	tech := testhelpers.CreateTestTechnician(t, app, "Sam Reyes")
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-832", nil)
	entry := testhelpers.CreateTestDailyHours(t, app, wo.Id, tech.Id, "2025-03-04", map[string]any{
		"hours_regular": 4.0,
	})

	handler := HandleDailyHoursDelete(app)
	req := httptest.NewRequest(http.MethodPost, "/workorders/"+wo.Id+"/hours/"+entry.Id+"/delete", nil)
	req.SetPathValue("id", wo.Id)
	req.SetPathValue("entryId", entry.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if _, err := app.FindRecordById("daily_hours_log", entry.Id); err == nil {
		t.Error("entry still exists after delete")
	}
}

func TestHandleDailyHoursDelete_WrongWorkOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	tech := testhelpers.CreateTestTechnician(t, app, "Sam Reyes")
	woA := testhelpers.CreateTestWorkOrder(t, app, "WO-833", nil)
	woB := testhelpers.CreateTestWorkOrder(t, app, "WO-834", nil)
	entry := testhelpers.CreateTestDailyHours(t, app, woA.Id, tech.Id, "2025-03-04", map[string]any{
		"hours_regular": 4.0,
	})

	handler := HandleDailyHoursDelete(app)
	req := httptest.NewRequest(http.MethodPost, "/workorders/"+woB.Id+"/hours/"+entry.Id+"/delete", nil)
	req.SetPathValue("id", woB.Id)
	req.SetPathValue("entryId", entry.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("daily_hours_log", entry.Id); err != nil {
		t.Error("entry should survive a cross-work-order delete attempt")
	}
}

func TestHandleAssignmentSave_CreatesRow(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	tech := testhelpers.CreateTestTechnician(t, app, "Pat Lee")
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-835", nil)

	form := url.Values{
		"technician":    {tech.Id},
		"hours_regular": {"3"},
		"miles":         {"12"},
	}
	handler := HandleAssignmentSave(app)
	req := newFormRequest("/workorders/"+wo.Id+"/assignments", form)
	req.SetPathValue("id", wo.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}

	rows, _ := app.FindAllRecords("work_order_assignments")
	if len(rows) != 1 {
		t.Fatalf("assignments = %d, want 1", len(rows))
	}
	if rows[0].GetFloat("hours_regular") != 3 || rows[0].GetFloat("miles") != 12 {
		t.Errorf("saved = %+v", rows[0])
	}
}

func TestHandleAssignmentDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	tech := testhelpers.CreateTestTechnician(t, app, "Pat Lee")
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-836", nil)
	assignment := testhelpers.CreateTestAssignment(t, app, wo.Id, tech.Id, map[string]any{
		"hours_regular": 2.0,
	})

	handler := HandleAssignmentDelete(app)
	req := httptest.NewRequest(http.MethodPost, "/workorders/"+wo.Id+"/assignments/"+assignment.Id+"/delete", nil)
	req.SetPathValue("id", wo.Id)
	req.SetPathValue("assignmentId", assignment.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if _, err := app.FindRecordById("work_order_assignments", assignment.Id); err == nil {
		t.Error("assignment still exists after delete")
	}
}
