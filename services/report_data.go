package services

import (
	"fmt"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/sync/errgroup"
)

// This file is the only place engine input records are read from storage.
// PocketBase's typed accessors (GetFloat, GetString) return zero values for
// missing or malformed fields, which is exactly the coerce-to-zero policy
// the calculations require, so no per-field guards appear downstream.

// LoadTechNames returns a technician-id -> display-name map for attributing
// labor rows.
func LoadTechNames(app *pocketbase.PocketBase) (map[string]string, error) {
	records, err := app.FindAllRecords("technicians")
	if err != nil {
		return nil, fmt.Errorf("could not load technicians: %w", err)
	}
	names := make(map[string]string, len(records))
	for _, rec := range records {
		names[rec.Id] = rec.GetString("name")
	}
	return names, nil
}

// RecordToWorkOrder converts a work_orders record into the typed engine
// input. techNames resolves the lead technician relation; pass nil to leave
// the lead name blank.
func RecordToWorkOrder(rec *core.Record, techNames map[string]string) WorkOrder {
	return WorkOrder{
		ID:                rec.Id,
		Number:            rec.GetString("wo_number"),
		Building:          rec.GetString("building"),
		Status:            rec.GetString("status"),
		Description:       rec.GetString("description"),
		NTE:               rec.GetFloat("nte"),
		MaterialCost:      rec.GetFloat("material_cost"),
		EquipmentCost:     rec.GetFloat("equipment_cost"),
		TrailerCost:       rec.GetFloat("trailer_cost"),
		RentalCost:        rec.GetFloat("rental_cost"),
		LeadHoursRegular:  rec.GetFloat("hours_regular"),
		LeadHoursOvertime: rec.GetFloat("hours_overtime"),
		LeadMiles:         rec.GetFloat("miles"),
		LeadTechName:      techNames[rec.GetString("lead_tech")],
		Comments:          rec.GetString("comments"),
		DateEntered:       rec.GetString("date_entered"),
	}
}

func recordToDailyEntry(rec *core.Record, techNames map[string]string) DailyHoursEntry {
	techID := rec.GetString("technician")
	return DailyHoursEntry{
		ID:            rec.Id,
		WorkOrderID:   rec.GetString("work_order"),
		TechnicianID:  techID,
		TechName:      techNames[techID],
		WorkDate:      rec.GetString("work_date"),
		HoursRegular:  rec.GetFloat("hours_regular"),
		HoursOvertime: rec.GetFloat("hours_overtime"),
		Miles:         rec.GetFloat("miles"),
		MaterialCost:  rec.GetFloat("material_cost"),
		Notes:         rec.GetString("notes"),
	}
}

func recordToAssignment(rec *core.Record, techNames map[string]string) TeamAssignment {
	techID := rec.GetString("technician")
	return TeamAssignment{
		ID:            rec.Id,
		WorkOrderID:   rec.GetString("work_order"),
		TechnicianID:  techID,
		TechName:      techNames[techID],
		HoursRegular:  rec.GetFloat("hours_regular"),
		HoursOvertime: rec.GetFloat("hours_overtime"),
		Miles:         rec.GetFloat("miles"),
	}
}

// LoadWorkOrderBundle fetches one work order and both generations of its
// labor rows.
func LoadWorkOrderBundle(app *pocketbase.PocketBase, woID string) (*WorkOrderBundle, error) {
	techNames, err := LoadTechNames(app)
	if err != nil {
		return nil, err
	}
	return loadBundle(app, woID, techNames)
}

func loadBundle(app *pocketbase.PocketBase, woID string, techNames map[string]string) (*WorkOrderBundle, error) {
	rec, err := app.FindRecordById("work_orders", woID)
	if err != nil {
		return nil, fmt.Errorf("work order %s not found: %w", woID, err)
	}

	logRecords, err := app.FindRecordsByFilter(
		"daily_hours_log",
		"work_order = {:woId}",
		"work_date",
		0,
		0,
		map[string]any{"woId": woID},
	)
	if err != nil {
		return nil, fmt.Errorf("could not load daily hours for %s: %w", woID, err)
	}

	assignmentRecords, err := app.FindRecordsByFilter(
		"work_order_assignments",
		"work_order = {:woId}",
		"",
		0,
		0,
		map[string]any{"woId": woID},
	)
	if err != nil {
		return nil, fmt.Errorf("could not load assignments for %s: %w", woID, err)
	}

	bundle := &WorkOrderBundle{WorkOrder: RecordToWorkOrder(rec, techNames)}
	for _, lr := range logRecords {
		bundle.DailyLogs = append(bundle.DailyLogs, recordToDailyEntry(lr, techNames))
	}
	for _, ar := range assignmentRecords {
		bundle.Assignments = append(bundle.Assignments, recordToAssignment(ar, techNames))
	}
	return bundle, nil
}

// LoadWorkOrderBundles fetches the bundles for a batch export. Per-work-order
// fetches run concurrently but aggregation never starts until every fetch
// has finished; if any fetch fails the whole load fails and no partial
// result is returned.
func LoadWorkOrderBundles(app *pocketbase.PocketBase, woIDs []string) ([]WorkOrderBundle, error) {
	if len(woIDs) == 0 {
		return nil, ErrNothingToExport
	}

	techNames, err := LoadTechNames(app)
	if err != nil {
		return nil, err
	}

	bundles := make([]*WorkOrderBundle, len(woIDs))

	var g errgroup.Group
	g.SetLimit(8)
	for i, id := range woIDs {
		g.Go(func() error {
			b, err := loadBundle(app, id, techNames)
			if err != nil {
				return err
			}
			bundles[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("report fetch failed: %w", err)
	}

	result := make([]WorkOrderBundle, len(bundles))
	for i, b := range bundles {
		result[i] = *b
	}
	return result, nil
}

// ListWorkOrders fetches every work order as a typed record, sorted by
// display number.
func ListWorkOrders(app *pocketbase.PocketBase) ([]WorkOrder, error) {
	techNames, err := LoadTechNames(app)
	if err != nil {
		return nil, err
	}

	records, err := app.FindAllRecords("work_orders")
	if err != nil {
		return nil, fmt.Errorf("could not load work orders: %w", err)
	}

	orders := make([]WorkOrder, 0, len(records))
	for _, rec := range records {
		orders = append(orders, RecordToWorkOrder(rec, techNames))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Number < orders[j].Number })
	return orders, nil
}
