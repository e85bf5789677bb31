package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the technicians, work_orders,
// daily_hours_log and work_order_assignments collections exist.
func Setup(app *pocketbase.PocketBase) {
	technicians := ensureCollection(app, "technicians", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "role",
			Required:  false,
			Values:    []string{"lead_tech", "tech", "office"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	workOrders := ensureCollection(app, "work_orders", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "wo_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "building", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"pending", "assigned", "in_progress", "completed", "needs_return"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "nte", Required: false})
		c.Fields.Add(&core.NumberField{Name: "material_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "equipment_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "trailer_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "rental_cost", Required: false})
		// Legacy single-tech tracking fields; superseded per work order once
		// any daily hours rows exist.
		c.Fields.Add(&core.NumberField{Name: "hours_regular", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours_overtime", Required: false})
		c.Fields.Add(&core.NumberField{Name: "miles", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "lead_tech",
			Required:     false,
			CollectionId: technicians.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "comments", Required: false})
		c.Fields.Add(&core.TextField{Name: "date_entered", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "daily_hours_log", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "work_order",
			Required:      true,
			CollectionId:  workOrders.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "technician",
			Required:     true,
			CollectionId: technicians.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "work_date", Required: true})
		c.Fields.Add(&core.NumberField{Name: "hours_regular", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours_overtime", Required: false})
		c.Fields.Add(&core.NumberField{Name: "miles", Required: false})
		c.Fields.Add(&core.NumberField{Name: "material_cost", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "work_order_assignments", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "work_order",
			Required:      true,
			CollectionId:  workOrders.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "technician",
			Required:     true,
			CollectionId: technicians.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "hours_regular", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours_overtime", Required: false})
		c.Fields.Add(&core.NumberField{Name: "miles", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
