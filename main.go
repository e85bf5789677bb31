package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/collections"
	"fieldservice/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateMissingWONumbers(app); err != nil {
			log.Printf("Warning: WO number migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Exports and reports (before /workorders/{id}) ────────
		se.Router.GET("/workorders/export/csv", handlers.HandleWorkOrderCSVExport(app))
		se.Router.GET("/workorders/report/excel", handlers.HandleLineItemReportExcel(app))
		se.Router.GET("/workorders/report/csv", handlers.HandleLineItemReportCSV(app))

		// ── Work order CRUD ──────────────────────────────────────
		se.Router.GET("/workorders", handlers.HandleWorkOrderList(app))
		se.Router.GET("/workorders/create", handlers.HandleWorkOrderCreate(app))
		se.Router.POST("/workorders", handlers.HandleWorkOrderSave(app))
		se.Router.GET("/workorders/{id}/edit", handlers.HandleWorkOrderEdit(app))
		se.Router.POST("/workorders/{id}/save", handlers.HandleWorkOrderUpdate(app))
		se.Router.POST("/workorders/{id}/delete", handlers.HandleWorkOrderDelete(app))

		// ── Daily hours log ──────────────────────────────────────
		se.Router.POST("/workorders/{id}/hours", handlers.HandleDailyHoursSave(app))
		se.Router.POST("/workorders/{id}/hours/{entryId}/delete", handlers.HandleDailyHoursDelete(app))

		// ── Legacy team assignments ──────────────────────────────
		se.Router.POST("/workorders/{id}/assignments", handlers.HandleAssignmentSave(app))
		se.Router.POST("/workorders/{id}/assignments/{assignmentId}/delete", handlers.HandleAssignmentDelete(app))

		// ── Invoice ──────────────────────────────────────────────
		se.Router.GET("/workorders/{id}/invoice.pdf", handlers.HandleInvoicePDF(app))

		// Work order detail (after specific /workorders/* routes)
		se.Router.GET("/workorders/{id}", handlers.HandleWorkOrderView(app))

		// Redirect home to the dashboard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/workorders")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
