package collections_test

import (
	"strings"
	"testing"

	"fieldservice/collections"
	"fieldservice/testhelpers"
)

func TestMigrateMissingWONumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	numbered := testhelpers.CreateTestWorkOrder(t, app, "WO-100", nil)

	// wo_number is required by the schema, so simulate the legacy record by
	// clearing it after creation.
	unnamed := testhelpers.CreateTestWorkOrder(t, app, "WO-TEMP", nil)
	unnamed.Set("wo_number", "")
	if err := app.SaveNoValidate(unnamed); err != nil {
		t.Fatalf("could not clear wo_number: %v", err)
	}

	if err := collections.MigrateMissingWONumbers(app); err != nil {
		t.Fatalf("MigrateMissingWONumbers() error = %v", err)
	}

	refetched, err := app.FindRecordById("work_orders", unnamed.Id)
	if err != nil {
		t.Fatalf("could not refetch record: %v", err)
	}
	got := refetched.GetString("wo_number")
	if !strings.HasPrefix(got, "WO-") || got == "" {
		t.Errorf("backfilled number = %q, want WO- prefix", got)
	}

	untouched, _ := app.FindRecordById("work_orders", numbered.Id)
	if untouched.GetString("wo_number") != "WO-100" {
		t.Errorf("existing number changed to %q", untouched.GetString("wo_number"))
	}
}

func TestMigrateMissingWONumbers_NothingToDo(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestWorkOrder(t, app, "WO-200", nil)

	if err := collections.MigrateMissingWONumbers(app); err != nil {
		t.Errorf("MigrateMissingWONumbers() error = %v", err)
	}
}
