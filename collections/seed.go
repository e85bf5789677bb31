package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type techDef struct {
	name  string
	role  string
	phone string
	email string
}

type dailyDef struct {
	techIdx       int
	workDate      string
	hoursRegular  float64
	hoursOvertime float64
	miles         float64
	materialCost  float64
	notes         string
}

type assignmentDef struct {
	techIdx       int
	hoursRegular  float64
	hoursOvertime float64
	miles         float64
}

type workOrderDef struct {
	number        string
	building      string
	status        string
	description   string
	nte           float64
	materialCost  float64
	equipmentCost float64
	trailerCost   float64
	rentalCost    float64
	hoursRegular  float64
	hoursOvertime float64
	miles         float64
	leadTechIdx   int // index into techs, -1 for none
	comments      string
	dateEntered   string
	dailyLogs     []dailyDef
	assignments   []assignmentDef
}

// Seed populates the collections with a realistic set of technicians and
// work orders covering both tracking generations. It is safe to call on
// every startup because it returns early if any work order records exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if work orders already exist ───────────────
	woCol, err := app.FindCollectionByNameOrId("work_orders")
	if err != nil {
		return fmt.Errorf("seed: could not find work_orders collection: %w", err)
	}
	existing, err := app.FindAllRecords(woCol)
	if err != nil {
		return fmt.Errorf("seed: could not query work_orders: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: work_orders collection is empty – inserting seed data …")

	techCol, err := app.FindCollectionByNameOrId("technicians")
	if err != nil {
		return fmt.Errorf("seed: could not find technicians collection: %w", err)
	}
	dailyCol, err := app.FindCollectionByNameOrId("daily_hours_log")
	if err != nil {
		return fmt.Errorf("seed: could not find daily_hours_log collection: %w", err)
	}
	assignCol, err := app.FindCollectionByNameOrId("work_order_assignments")
	if err != nil {
		return fmt.Errorf("seed: could not find work_order_assignments collection: %w", err)
	}

	techs := []techDef{
		{"Mike Jones", "lead_tech", "555-0101", "mike.jones@acmefield.example"},
		{"Sam Reyes", "lead_tech", "555-0102", "sam.reyes@acmefield.example"},
		{"Dana Cole", "tech", "555-0103", "dana.cole@acmefield.example"},
		{"Pat Lee", "tech", "555-0104", "pat.lee@acmefield.example"},
	}

	techIDs := make([]string, len(techs))
	for i, td := range techs {
		r := core.NewRecord(techCol)
		r.Set("name", td.name)
		r.Set("role", td.role)
		r.Set("phone", td.phone)
		r.Set("email", td.email)
		r.Set("active", true)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not create technician %q: %w", td.name, err)
		}
		techIDs[i] = r.Id
	}

	workOrders := []workOrderDef{
		{
			// Legacy-era record: lead tech hours on the work order itself,
			// plus one team assignment row.
			number: "WO-1041", building: "Riverside Mall", status: "completed",
			description: "Replace rooftop condenser fan motor",
			nte:         1000, materialCost: 100,
			hoursRegular: 6, hoursOvertime: 2, miles: 30,
			leadTechIdx: 0, dateEntered: "2024-11-12",
			comments: "Motor sourced same day",
			assignments: []assignmentDef{
				{techIdx: 3, hoursRegular: 4, miles: 30},
			},
		},
		{
			// Current-era record: daily hours log drives all labor.
			number: "WO-1187", building: "North Depot", status: "in_progress",
			description: "Loading dock door track repair",
			nte:         3500, equipmentCost: 220, rentalCost: 150,
			leadTechIdx: 1, dateEntered: "2025-02-03",
			dailyLogs: []dailyDef{
				{techIdx: 1, workDate: "2025-02-04", hoursRegular: 8, miles: 24, materialCost: 37.80, notes: "Track sections cut to length"},
				{techIdx: 1, workDate: "2025-02-05", hoursRegular: 6.5, hoursOvertime: 1.5, miles: 24},
				{techIdx: 2, workDate: "2025-02-05", hoursRegular: 7, miles: 18.2},
			},
		},
		{
			number: "WO-1202", building: "Elm Street Clinic", status: "assigned",
			description: "Quarterly HVAC preventive maintenance",
			nte:         800, leadTechIdx: 2, dateEntered: "2025-02-18",
		},
		{
			number: "WO-1215", building: "Harbor Warehouse", status: "pending",
			description: "Investigate breaker panel fault",
			leadTechIdx: -1, dateEntered: "2025-02-24",
		},
		{
			number: "WO-1118", building: "Riverside Mall", status: "needs_return",
			description: "Trailer-mounted generator hookup for outage",
			nte:         6000, trailerCost: 480, materialCost: 96.40,
			leadTechIdx: 0, dateEntered: "2025-01-09",
			dailyLogs: []dailyDef{
				{techIdx: 0, workDate: "2025-01-10", hoursRegular: 10, hoursOvertime: 2, miles: 42},
				{techIdx: 3, workDate: "2025-01-10", hoursRegular: 10, miles: 42, materialCost: 28.15, notes: "Cam-lock adapters"},
			},
			comments: "Return visit needed once utility restores feed",
		},
	}

	for _, wd := range workOrders {
		r := core.NewRecord(woCol)
		r.Set("wo_number", wd.number)
		r.Set("building", wd.building)
		r.Set("status", wd.status)
		r.Set("description", wd.description)
		r.Set("nte", wd.nte)
		r.Set("material_cost", wd.materialCost)
		r.Set("equipment_cost", wd.equipmentCost)
		r.Set("trailer_cost", wd.trailerCost)
		r.Set("rental_cost", wd.rentalCost)
		r.Set("hours_regular", wd.hoursRegular)
		r.Set("hours_overtime", wd.hoursOvertime)
		r.Set("miles", wd.miles)
		if wd.leadTechIdx >= 0 {
			r.Set("lead_tech", techIDs[wd.leadTechIdx])
		}
		r.Set("comments", wd.comments)
		r.Set("date_entered", wd.dateEntered)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not create work order %q: %w", wd.number, err)
		}

		for _, dd := range wd.dailyLogs {
			dr := core.NewRecord(dailyCol)
			dr.Set("work_order", r.Id)
			dr.Set("technician", techIDs[dd.techIdx])
			dr.Set("work_date", dd.workDate)
			dr.Set("hours_regular", dd.hoursRegular)
			dr.Set("hours_overtime", dd.hoursOvertime)
			dr.Set("miles", dd.miles)
			dr.Set("material_cost", dd.materialCost)
			dr.Set("notes", dd.notes)
			if err := app.Save(dr); err != nil {
				return fmt.Errorf("seed: could not create daily hours for %q: %w", wd.number, err)
			}
		}

		for _, ad := range wd.assignments {
			ar := core.NewRecord(assignCol)
			ar.Set("work_order", r.Id)
			ar.Set("technician", techIDs[ad.techIdx])
			ar.Set("hours_regular", ad.hoursRegular)
			ar.Set("hours_overtime", ad.hoursOvertime)
			ar.Set("miles", ad.miles)
			if err := app.Save(ar); err != nil {
				return fmt.Errorf("seed: could not create assignment for %q: %w", wd.number, err)
			}
		}
	}

	log.Printf("seed: inserted %d technicians and %d work orders.\n", len(techs), len(workOrders))
	return nil
}
