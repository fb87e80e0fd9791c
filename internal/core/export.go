package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// csvTimeLayout is the fixed timestamp format used in exports.
const csvTimeLayout = "2006-01-02 15:04"

// csvField escapes one text field for CSV: embedded double quotes are
// doubled and the field is wrapped in quotes. Every text field in every
// export goes through this one function so the round-trip guarantee
// (a standard CSV parser reconstructs the original string) holds at
// every call site.
func csvField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// InventoryCSV serializes views to CSV: a header row followed by one row
// per record, comma-separated, rows joined with \n. The column order is
// part of the export contract consumed by downstream spreadsheets:
//
//	Part Number, Description, Type, Quantity, Status, Supplier, Last Updated
func InventoryCSV(views []InventoryView) string {
	rows := make([]string, 0, len(views)+1)
	rows = append(rows, "Part Number,Description,Type,Quantity,Status,Supplier,Last Updated")

	for _, v := range views {
		updated := ""
		if !v.LastUpdated.IsZero() {
			updated = v.LastUpdated.Format(csvTimeLayout)
		}
		rows = append(rows, strings.Join([]string{
			csvField(v.PartNumber),
			csvField(v.Description),
			csvField(v.Category),
			strconv.Itoa(v.CurrentQty),
			csvField(string(v.Status)),
			csvField(v.SupplierName),
			csvField(updated),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

// InventoryReport renders a printable plain-text summary: totals by
// status followed by the lines needing attention (low or out of stock),
// in the order given. The only timestamp in the output is the explicit
// generatedAt value, so the same input always yields the same bytes.
func InventoryReport(views []InventoryView, summary InventorySummary, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("INVENTORY STATUS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "Total stock lines: %d\n", summary.Counts.Total)
	fmt.Fprintf(&b, "  In stock:     %d\n", summary.Counts.InStock)
	fmt.Fprintf(&b, "  Low stock:    %d\n", summary.Counts.LowStock)
	fmt.Fprintf(&b, "  Out of stock: %d\n", summary.Counts.OutOfStock)
	fmt.Fprintf(&b, "Total stock value: %s\n", summary.TotalValue.StringFixed(2))

	for _, u := range summary.Utilization {
		switch {
		case u.Percent != nil:
			fmt.Fprintf(&b, "Warehouse %s: %d/%d (%.1f%% full)\n", u.Name, u.Occupied, *u.Capacity, *u.Percent)
		case u.Capacity != nil:
			// Capacity is known to be zero; the ratio is undefined, not 0%.
			fmt.Fprintf(&b, "Warehouse %s: %d occupied (zero capacity)\n", u.Name, u.Occupied)
		default:
			fmt.Fprintf(&b, "Warehouse %s: %d occupied (capacity unknown)\n", u.Name, u.Occupied)
		}
	}

	b.WriteString("\nLINES NEEDING ATTENTION\n")
	attention := 0
	for _, v := range views {
		if v.Status == InStock {
			continue
		}
		attention++
		qty := strconv.Itoa(v.CurrentQty)
		if v.RawQty != "" {
			qty = fmt.Sprintf("%d (raw %q)", v.CurrentQty, v.RawQty)
		}
		fmt.Fprintf(&b, "  %-16s %-32s qty %-10s %-14s %s / %s\n",
			v.PartNumber, v.Description, qty, v.Status, v.SupplierName, v.WarehouseName)
	}
	if attention == 0 {
		b.WriteString("  (none)\n")
	}

	return b.String()
}
