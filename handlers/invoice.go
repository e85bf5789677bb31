package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/services"
)

// Letterhead constants for the invoice PDF.
const (
	companyName    = "Acme Field Services"
	companyAddress = "100 Industrial Way, Springfield"
	companyEmail   = "billing@acmefield.example"
)

// HandleInvoicePDF returns a handler that generates and downloads the
// invoice PDF for one work order.
func HandleInvoicePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		woID := e.Request.PathValue("id")
		if woID == "" {
			return e.String(http.StatusBadRequest, "Missing work order ID")
		}

		bundle, err := services.LoadWorkOrderBundle(app, woID)
		if err != nil {
			log.Printf("invoice: %v", err)
			return e.String(http.StatusNotFound, "Work order not found")
		}

		rates := services.DefaultRates()
		labor := services.ReconcileLaborSource(bundle.WorkOrder, bundle.DailyLogs, bundle.Assignments)
		summary := services.BuildCostSummary(bundle.WorkOrder, labor, rates)

		data := &services.InvoiceData{
			CompanyName:    companyName,
			CompanyAddress: companyAddress,
			CompanyEmail:   companyEmail,
			WorkOrder:      bundle.WorkOrder,
			Summary:        summary,
			Budget:         services.EvaluateBudget(summary.GrandTotal, bundle.WorkOrder.NTE),
			Rates:          rates,
		}

		pdfBytes, err := services.GenerateInvoicePDF(data)
		if err != nil {
			log.Printf("invoice: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Invoice_%s.pdf", sanitizeFilename(bundle.WorkOrder.Number))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
