package core

// Status is the derived classification of a stock quantity.
type Status string

const (
	OutOfStock Status = "OUT_OF_STOCK"
	LowStock   Status = "LOW_STOCK"
	InStock    Status = "IN_STOCK"
)

// LowStockCeiling is the exclusive upper bound of the low-stock band.
// A quantity of exactly LowStockCeiling is IN_STOCK.
const LowStockCeiling = 10

// Classify maps a current quantity to its stock status. It is total over
// all integers: negative quantities are valid upstream data (adjustment
// drift, back-orders) and classify as OUT_OF_STOCK rather than erroring.
//
// Every call site in the system must route through this function — the
// boundary at LowStockCeiling is load-bearing for the per-status counts
// shown on the dashboard, and two screens disagreeing on it reads as a
// data bug to the user.
func Classify(currentQty int) Status {
	switch {
	case currentQty <= 0:
		return OutOfStock
	case currentQty < LowStockCeiling:
		return LowStock
	default:
		return InStock
	}
}

// ValidStatusFilter reports whether s names a Status or the "All" wildcard.
// The empty string is treated the same as "All".
func ValidStatusFilter(s string) bool {
	switch Status(s) {
	case OutOfStock, LowStock, InStock:
		return true
	}
	return s == "" || s == "All"
}
