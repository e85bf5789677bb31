// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestTechnician creates a technician record with the given name and returns it.
func CreateTestTechnician(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("technicians")
	if err != nil {
		t.Fatalf("failed to find technicians collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test technician: %v", err)
	}

	return record
}

// CreateTestWorkOrder creates a work order record and returns it. The fields
// map is applied on top of the minimal defaults.
func CreateTestWorkOrder(t *testing.T, app *pocketbase.PocketBase, number string, fields map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("work_orders")
	if err != nil {
		t.Fatalf("failed to find work_orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("wo_number", number)
	record.Set("building", "Test Building")
	record.Set("status", "pending")
	for k, v := range fields {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test work order: %v", err)
	}

	return record
}

// CreateTestDailyHours creates a daily hours log record linked to a work
// order and technician.
func CreateTestDailyHours(t *testing.T, app *pocketbase.PocketBase, woID, techID, workDate string, fields map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("daily_hours_log")
	if err != nil {
		t.Fatalf("failed to find daily_hours_log collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("work_order", woID)
	record.Set("technician", techID)
	record.Set("work_date", workDate)
	for k, v := range fields {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test daily hours: %v", err)
	}

	return record
}

// CreateTestAssignment creates a legacy team assignment record linked to a
// work order and technician.
func CreateTestAssignment(t *testing.T, app *pocketbase.PocketBase, woID, techID string, fields map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("work_order_assignments")
	if err != nil {
		t.Fatalf("failed to find work_order_assignments collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("work_order", woID)
	record.Set("technician", techID)
	for k, v := range fields {
		record.Set(k, v)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test assignment: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
