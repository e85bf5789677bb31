package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fieldservice/testhelpers"
)

func TestHandleLineItemReportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-840", map[string]any{
		"nte":            1000.0,
		"material_cost":  100.0,
		"hours_regular":  6.0,
		"hours_overtime": 2.0,
		"miles":          30.0,
	})

	handler := HandleLineItemReportExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/workorders/report/excel?ids="+wo.Id, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty response body")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestHandleLineItemReportCSV(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-841", map[string]any{
		"material_cost": 100.0,
		"hours_regular": 6.0,
	})

	handler := HandleLineItemReportCSV(app)
	req := httptest.NewRequest(http.MethodGet, "/workorders/report/csv?ids="+wo.Id, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if !strings.Contains(body, "WO-841") || !strings.Contains(body, "GRAND TOTAL") {
		t.Errorf("unexpected CSV body:\n%s", body)
	}
	// Admin is always billed.
	if !strings.Contains(body, "Office") {
		t.Errorf("CSV missing admin row:\n%s", body)
	}
}

func TestHandleLineItemReportCSV_NoSelectionExportsAll(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestWorkOrder(t, app, "WO-842", nil)
	testhelpers.CreateTestWorkOrder(t, app, "WO-843", nil)

	handler := HandleLineItemReportCSV(app)
	req := httptest.NewRequest(http.MethodGet, "/workorders/report/csv", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "WO-842") || !strings.Contains(body, "WO-843") {
		t.Errorf("expected both work orders in export:\n%s", body)
	}
}

func TestHandleLineItemReportCSV_NothingToExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleLineItemReportCSV(app)
	req := httptest.NewRequest(http.MethodGet, "/workorders/report/csv", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleWorkOrderCSVExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestWorkOrder(t, app, "WO-844", map[string]any{
		"building":      "South Yard",
		"status":        "completed",
		"hours_regular": 4.0,
	})

	handler := HandleWorkOrderCSVExport(app)
	req := httptest.NewRequest(http.MethodGet, "/workorders/export/csv", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if !strings.Contains(body, "WO-844") || !strings.Contains(body, "South Yard") {
		t.Errorf("unexpected CSV body:\n%s", body)
	}
}

func TestHandleInvoicePDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-845", map[string]any{
		"nte":           1000.0,
		"hours_regular": 6.0,
	})

	handler := HandleInvoicePDF(app)
	req := httptest.NewRequest(http.MethodGet, "/workorders/"+wo.Id+"/invoice.pdf", nil)
	req.SetPathValue("id", wo.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if body := rec.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response is not a PDF")
	}
}

func TestHandleInvoicePDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleInvoicePDF(app)
	req := httptest.NewRequest(http.MethodGet, "/workorders/missing123/invoice.pdf", nil)
	req.SetPathValue("id", "missing123")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"WO-100", "WO-100"},
		{"WO 100", "WO-100"},
		{"a/b\\c:d", "a-b-c-d"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
