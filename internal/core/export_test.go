package core_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"supplychain-console/internal/core"
)

func TestInventoryCSV(t *testing.T) {
	views := []core.InventoryView{
		{PartNumber: "CMP-001", Description: "Alpha drive housing", Category: "Enclosure",
			CurrentQty: 6, Status: core.LowStock, SupplierName: "Acme Components",
			LastUpdated: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)},
	}
	got := core.InventoryCSV(views)
	want := "Part Number,Description,Type,Quantity,Status,Supplier,Last Updated\n" +
		`"CMP-001","Alpha drive housing","Enclosure",6,"LOW_STOCK","Acme Components","2026-08-20 09:30"`
	if got != want {
		t.Errorf("InventoryCSV =\n%s\nwant\n%s", got, want)
	}
}

func TestInventoryCSV_HeaderOnly(t *testing.T) {
	got := core.InventoryCSV(nil)
	if got != "Part Number,Description,Type,Quantity,Status,Supplier,Last Updated" {
		t.Errorf("empty export = %q", got)
	}
}

func TestInventoryCSV_EscapingRoundTrip(t *testing.T) {
	// Descriptions with embedded quotes and commas must survive a
	// standard CSV parser unchanged.
	nasty := `He said "hi", bye`
	views := []core.InventoryView{
		{PartNumber: "CMP-009", Description: nasty, Category: `5" tube, welded`,
			CurrentQty: 3, Status: core.LowStock, SupplierName: `"Quotes" & Co`},
	}

	records, err := csv.NewReader(strings.NewReader(core.InventoryCSV(views))).ReadAll()
	if err != nil {
		t.Fatalf("standard CSV parser rejected the export: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(records))
	}
	row := records[1]
	if row[1] != nasty {
		t.Errorf("description round-trip: got %q, want %q", row[1], nasty)
	}
	if row[2] != `5" tube, welded` {
		t.Errorf("category round-trip: got %q", row[2])
	}
	if row[5] != `"Quotes" & Co` {
		t.Errorf("supplier round-trip: got %q", row[5])
	}
}

func TestInventoryReport_Deterministic(t *testing.T) {
	views := []core.InventoryView{
		{PartNumber: "CMP-002", Description: "Beta control board", CurrentQty: 42,
			Status: core.InStock, SupplierName: "Acme Components", WarehouseName: "WH-A"},
		{PartNumber: "CMP-001", Description: "Alpha drive housing", CurrentQty: 6,
			Status: core.LowStock, SupplierName: "Acme Components", WarehouseName: "WH-A"},
	}
	summary := core.InventorySummary{
		Counts:     core.StatusCounts{Total: 2, InStock: 1, LowStock: 1},
		TotalValue: decimal.RequireFromString("3777.30"),
		Utilization: []core.WarehouseUtilization{
			{WarehouseID: 1, Name: "WH-A", Occupied: 48},
		},
	}
	generatedAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	first := core.InventoryReport(views, summary, generatedAt)
	second := core.InventoryReport(views, summary, generatedAt)
	if first != second {
		t.Fatal("same input produced different report bytes")
	}

	if !strings.HasPrefix(first, "INVENTORY STATUS REPORT\nGenerated: 2026-08-29 12:00:00\n") {
		t.Errorf("report header wrong:\n%s", first)
	}
	for _, want := range []string{
		"Total stock lines: 2",
		"In stock:     1",
		"Low stock:    1",
		"Out of stock: 0",
		"Total stock value: 3777.30",
		"Warehouse WH-A: 48 occupied (capacity unknown)",
		"LINES NEEDING ATTENTION",
		"CMP-001",
	} {
		if !strings.Contains(first, want) {
			t.Errorf("report missing %q:\n%s", want, first)
		}
	}
	// Only the low-stock line is listed.
	if strings.Contains(strings.SplitN(first, "LINES NEEDING ATTENTION", 2)[1], "CMP-002") {
		t.Errorf("in-stock line listed under attention:\n%s", first)
	}
}

func TestInventoryReport_UtilizationLabels(t *testing.T) {
	capacity := 100
	zero := 0
	summary := core.InventorySummary{
		Utilization: []core.WarehouseUtilization{
			{Name: "WH-A", Occupied: 50, Capacity: &capacity, Percent: floatPtr(50.0)},
			{Name: "WH-B", Occupied: 7},
			{Name: "WH-C", Occupied: 3, Capacity: &zero},
		},
	}
	report := core.InventoryReport(nil, summary, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"Warehouse WH-A: 50/100 (50.0% full)",
		"Warehouse WH-B: 7 occupied (capacity unknown)",
		"Warehouse WH-C: 3 occupied (zero capacity)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestInventoryReport_NoAttentionLines(t *testing.T) {
	views := []core.InventoryView{
		{PartNumber: "CMP-002", CurrentQty: 42, Status: core.InStock},
	}
	summary := core.SummarizeInventory(views, nil)
	report := core.InventoryReport(views, summary, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(report, "(none)") {
		t.Errorf("report should mark an empty attention list:\n%s", report)
	}
}

func TestInventoryReport_RawQtySurfaced(t *testing.T) {
	views := []core.InventoryView{
		{PartNumber: "CMP-007", Description: "Mystery part", CurrentQty: 0, RawQty: "lots",
			Status: core.OutOfStock, SupplierName: "Acme Components", WarehouseName: "WH-A"},
	}
	report := core.InventoryReport(views, core.SummarizeInventory(views, nil),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(report, `(raw "lots")`) {
		t.Errorf("malformed source quantity not surfaced:\n%s", report)
	}
}
