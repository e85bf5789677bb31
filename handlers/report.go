package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldservice/services"
)

// loadSelectedBundles resolves the ?ids= selection to work order bundles.
// With no ids the whole table is exported.
func loadSelectedBundles(app *pocketbase.PocketBase, e *core.RequestEvent) ([]services.WorkOrderBundle, error) {
	if err := e.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	ids := e.Request.Form["ids"]
	if len(ids) == 0 {
		orders, err := services.ListWorkOrders(app)
		if err != nil {
			return nil, err
		}
		for _, wo := range orders {
			ids = append(ids, wo.ID)
		}
	}

	return services.LoadWorkOrderBundles(app, ids)
}

// HandleLineItemReportExcel returns a handler that generates the per-line-item
// cost report for the selected work orders as an Excel download.
func HandleLineItemReportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bundles, err := loadSelectedBundles(app, e)
		if err != nil {
			if errors.Is(err, services.ErrNothingToExport) {
				return e.String(http.StatusBadRequest, "No work orders selected")
			}
			log.Printf("report_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		title := fmt.Sprintf("Line Item Report %s", time.Now().Format("2006-01-02"))
		report, err := services.BuildLineItemReport(bundles, services.DefaultRates())
		if err != nil {
			if errors.Is(err, services.ErrNothingToExport) {
				return e.String(http.StatusBadRequest, "No work orders selected")
			}
			log.Printf("report_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		xlsxBytes, err := services.GenerateReportExcel(report, title)
		if err != nil {
			log.Printf("report_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("LineItems_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleLineItemReportCSV returns a handler that generates the same report
// as CSV.
func HandleLineItemReportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bundles, err := loadSelectedBundles(app, e)
		if err != nil {
			if errors.Is(err, services.ErrNothingToExport) {
				return e.String(http.StatusBadRequest, "No work orders selected")
			}
			log.Printf("report_csv: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		report, err := services.BuildLineItemReport(bundles, services.DefaultRates())
		if err != nil {
			if errors.Is(err, services.ErrNothingToExport) {
				return e.String(http.StatusBadRequest, "No work orders selected")
			}
			log.Printf("report_csv: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		csvBytes, err := services.GenerateReportCSV(report)
		if err != nil {
			log.Printf("report_csv: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV file")
		}

		filename := fmt.Sprintf("LineItems_%s.csv", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandleWorkOrderCSVExport returns a handler that generates the flat
// one-row-per-work-order CSV of every order.
func HandleWorkOrderCSVExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bundles, err := loadSelectedBundles(app, e)
		if err != nil {
			if errors.Is(err, services.ErrNothingToExport) {
				return e.String(http.StatusBadRequest, "No work orders to export")
			}
			log.Printf("workorder_export: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		csvBytes, err := services.GenerateWorkOrderCSV(bundles, services.DefaultRates())
		if err != nil {
			if errors.Is(err, services.ErrNothingToExport) {
				return e.String(http.StatusBadRequest, "No work orders to export")
			}
			log.Printf("workorder_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV file")
		}

		filename := fmt.Sprintf("WorkOrders_%s.csv", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
