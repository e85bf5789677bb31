package services

import (
	"errors"
	"testing"

	"fieldservice/testhelpers"
)

func TestLoadWorkOrderBundle(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	tech := testhelpers.CreateTestTechnician(t, app, "Sam Reyes")
	lead := testhelpers.CreateTestTechnician(t, app, "Mike Jones")
	wo := testhelpers.CreateTestWorkOrder(t, app, "WO-700", map[string]any{
		"building":      "North Depot",
		"nte":           2000.0,
		"material_cost": 80.0,
		"lead_tech":     lead.Id,
	})
	testhelpers.CreateTestDailyHours(t, app, wo.Id, tech.Id, "2025-03-04", map[string]any{
		"hours_regular": 6.0,
		"miles":         15.0,
		"material_cost": 12.5,
	})
	testhelpers.CreateTestAssignment(t, app, wo.Id, tech.Id, map[string]any{
		"hours_regular": 3.0,
	})

	bundle, err := LoadWorkOrderBundle(app, wo.Id)
	if err != nil {
		t.Fatalf("LoadWorkOrderBundle() error = %v", err)
	}

	if bundle.WorkOrder.Number != "WO-700" || bundle.WorkOrder.NTE != 2000 {
		t.Errorf("work order = %+v", bundle.WorkOrder)
	}
	if bundle.WorkOrder.LeadTechName != "Mike Jones" {
		t.Errorf("lead tech name = %q, want Mike Jones", bundle.WorkOrder.LeadTechName)
	}

	if len(bundle.DailyLogs) != 1 {
		t.Fatalf("daily logs = %d, want 1", len(bundle.DailyLogs))
	}
	dl := bundle.DailyLogs[0]
	if dl.TechName != "Sam Reyes" || dl.HoursRegular != 6 || dl.MaterialCost != 12.5 {
		t.Errorf("daily log = %+v", dl)
	}

	if len(bundle.Assignments) != 1 {
		t.Fatalf("assignments = %d, want 1", len(bundle.Assignments))
	}
	if bundle.Assignments[0].TechName != "Sam Reyes" {
		t.Errorf("assignment = %+v", bundle.Assignments[0])
	}
}

func TestLoadWorkOrderBundle_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if _, err := LoadWorkOrderBundle(app, "missing123"); err == nil {
		t.Error("expected error for missing work order")
	}
}

func TestLoadWorkOrderBundles(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	a := testhelpers.CreateTestWorkOrder(t, app, "WO-701", nil)
	b := testhelpers.CreateTestWorkOrder(t, app, "WO-702", nil)

	bundles, err := LoadWorkOrderBundles(app, []string{a.Id, b.Id})
	if err != nil {
		t.Fatalf("LoadWorkOrderBundles() error = %v", err)
	}
	if len(bundles) != 2 {
		t.Fatalf("bundles = %d, want 2", len(bundles))
	}
	// Input order is preserved.
	if bundles[0].WorkOrder.Number != "WO-701" || bundles[1].WorkOrder.Number != "WO-702" {
		t.Errorf("bundle order = %s, %s", bundles[0].WorkOrder.Number, bundles[1].WorkOrder.Number)
	}
}

func TestLoadWorkOrderBundles_FailsWhole(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	a := testhelpers.CreateTestWorkOrder(t, app, "WO-703", nil)

	if _, err := LoadWorkOrderBundles(app, []string{a.Id, "missing123"}); err == nil {
		t.Error("expected error when any work order is missing")
	}
}

func TestLoadWorkOrderBundles_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if _, err := LoadWorkOrderBundles(app, nil); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("err = %v, want ErrNothingToExport", err)
	}
}

func TestListWorkOrders_SortedByNumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestWorkOrder(t, app, "WO-920", nil)
	testhelpers.CreateTestWorkOrder(t, app, "WO-100", nil)
	testhelpers.CreateTestWorkOrder(t, app, "WO-500", nil)

	orders, err := ListWorkOrders(app)
	if err != nil {
		t.Fatalf("ListWorkOrders() error = %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("orders = %d, want 3", len(orders))
	}
	want := []string{"WO-100", "WO-500", "WO-920"}
	for i, num := range want {
		if orders[i].Number != num {
			t.Errorf("orders[%d] = %s, want %s", i, orders[i].Number, num)
		}
	}
}
