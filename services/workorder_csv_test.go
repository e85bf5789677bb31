package services

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestGenerateWorkOrderCSV(t *testing.T) {
	bundle := scenarioBundle("WO-300")
	bundle.WorkOrder.Status = "completed"
	bundle.WorkOrder.Description = "Replace rooftop unit"

	out, err := GenerateWorkOrderCSV([]WorkOrderBundle{bundle}, DefaultRates())
	if err != nil {
		t.Fatalf("GenerateWorkOrderCSV() error = %v", err)
	}

	r := csv.NewReader(strings.NewReader(string(out)))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	row := records[1]
	if row[0] != "WO-300" || row[2] != "completed" || row[4] != "Mike Jones" {
		t.Errorf("row = %v", row)
	}
	if row[6] != "6.00" || row[7] != "2.00" || row[8] != "30.00" {
		t.Errorf("hours/miles = %v", row[6:9])
	}
	if row[9] != "100.00" {
		t.Errorf("material cost = %q, want 100.00 (base, not marked up)", row[9])
	}
	if row[13] != "859.00" || row[14] != "141.00" {
		t.Errorf("total/remaining = %q / %q", row[13], row[14])
	}
}

func TestGenerateWorkOrderCSV_DailyLogSuppressesLegacy(t *testing.T) {
	bundle := scenarioBundle("WO-310")
	bundle.DailyLogs = []DailyHoursEntry{
		{TechName: "Sam Reyes", WorkDate: "2025-03-04", HoursRegular: 5, Miles: 20},
	}

	out, err := GenerateWorkOrderCSV([]WorkOrderBundle{bundle}, DefaultRates())
	if err != nil {
		t.Fatalf("GenerateWorkOrderCSV() error = %v", err)
	}

	r := csv.NewReader(strings.NewReader(string(out)))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	row := records[1]
	if row[6] != "5.00" || row[7] != "0.00" || row[8] != "20.00" {
		t.Errorf("daily-log hours/miles = %v, legacy lead fields must not leak", row[6:9])
	}
}

func TestGenerateWorkOrderCSV_Empty(t *testing.T) {
	if _, err := GenerateWorkOrderCSV(nil, DefaultRates()); err != ErrNothingToExport {
		t.Errorf("err = %v, want ErrNothingToExport", err)
	}
}
