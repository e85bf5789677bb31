package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateMissingWONumbers finds work orders saved without a display number
// and backfills one from the record id so exports and reports always have a
// stable sort key. Safe to call on every startup -- returns early if nothing
// to migrate.
func MigrateMissingWONumbers(app *pocketbase.PocketBase) error {
	woCol, err := app.FindCollectionByNameOrId("work_orders")
	if err != nil {
		return fmt.Errorf("migrate: could not find work_orders collection: %w", err)
	}

	missing, err := app.FindRecordsByFilter(
		woCol,
		"wo_number = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query work orders: %w", err)
	}

	if len(missing) == 0 {
		return nil
	}

	log.Printf("migrate: found %d work order(s) without a number -- backfilling...\n", len(missing))

	for _, wo := range missing {
		wo.Set("wo_number", "WO-"+wo.Id)
		if err := app.Save(wo); err != nil {
			log.Printf("migrate: failed to backfill number for %s: %v\n", wo.Id, err)
			continue
		}
		log.Printf("migrate: work order %s -> %q\n", wo.Id, wo.GetString("wo_number"))
	}

	log.Println("migrate: work order number backfill complete.")
	return nil
}
