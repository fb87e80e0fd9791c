package core

import (
	"errors"
	"sort"
	"strings"
)

// SortKey names one of the fixed sort orders the console offers.
type SortKey string

const (
	SortByPartNumber  SortKey = "part_number"
	SortByQuantity    SortKey = "quantity"
	SortByStatus      SortKey = "status"
	SortByDescription SortKey = "description"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ErrUnknownSortKey is returned for a sort key outside the fixed set.
// An unknown key is a programming error, not user input: the keys are
// enumerable in the UI controls, so callers should fail fast rather
// than silently reorder.
var ErrUnknownSortKey = errors.New("unknown sort key")

// QueryParams is one user query over a joined collection. The zero value
// matches everything in input order.
type QueryParams struct {
	Search    string        `json:"search"`
	Status    string        `json:"status"`    // "", "All", or an exact status value
	SortKey   SortKey       `json:"sort_key"`  // empty = no sorting
	Direction SortDirection `json:"direction"` // empty = the key's default
}

// QueryInventory applies free-text search, the status filter, and the
// sort order to views, returning a new slice. The input is never
// mutated and its order is preserved for equal sort keys (stable sort).
// Filter and search run before sort; sort runs over the subset only.
//
// Search is a case-insensitive substring match over part number,
// description, supplier name, and warehouse name. An empty search term
// matches everything.
func QueryInventory(views []InventoryView, p QueryParams) ([]InventoryView, error) {
	less, err := inventoryLess(p)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(p.Search))
	filterStatus := statusFilter(p.Status)

	out := make([]InventoryView, 0, len(views))
	for _, v := range views {
		if filterStatus != "" && v.Status != filterStatus {
			continue
		}
		if term != "" && !matchesInventory(v, term) {
			continue
		}
		out = append(out, v)
	}

	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out, nil
}

// QueryShipments is the shipment-side counterpart of QueryInventory.
// The status filter matches the shipment lifecycle status; search covers
// part number, description, supplier name, carrier, and tracking number.
func QueryShipments(views []ShipmentView, p QueryParams) ([]ShipmentView, error) {
	less, err := shipmentLess(p)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(p.Search))

	out := make([]ShipmentView, 0, len(views))
	for _, v := range views {
		if p.Status != "" && p.Status != "All" && v.Status != ShipmentStatus(p.Status) {
			continue
		}
		if term != "" && !matchesShipment(v, term) {
			continue
		}
		out = append(out, v)
	}

	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out, nil
}

func statusFilter(s string) Status {
	if s == "" || s == "All" {
		return ""
	}
	return Status(s)
}

func matchesInventory(v InventoryView, term string) bool {
	return strings.Contains(strings.ToLower(v.PartNumber), term) ||
		strings.Contains(strings.ToLower(v.Description), term) ||
		strings.Contains(strings.ToLower(v.SupplierName), term) ||
		strings.Contains(strings.ToLower(v.WarehouseName), term)
}

func matchesShipment(v ShipmentView, term string) bool {
	return strings.Contains(strings.ToLower(v.PartNumber), term) ||
		strings.Contains(strings.ToLower(v.Description), term) ||
		strings.Contains(strings.ToLower(v.SupplierName), term) ||
		strings.Contains(strings.ToLower(v.Carrier), term) ||
		strings.Contains(strings.ToLower(v.TrackingNumber), term)
}

// inventoryLess resolves the comparison function for p. A nil function
// with nil error means "leave the filtered subset in input order".
// Quantity sorts descending by default (highest stock first); all other
// keys ascending.
func inventoryLess(p QueryParams) (func(a, b InventoryView) bool, error) {
	var less func(a, b InventoryView) bool
	switch p.SortKey {
	case "":
		return nil, nil
	case SortByPartNumber:
		less = func(a, b InventoryView) bool { return a.PartNumber < b.PartNumber }
	case SortByQuantity:
		less = func(a, b InventoryView) bool { return a.CurrentQty > b.CurrentQty }
	case SortByStatus:
		less = func(a, b InventoryView) bool { return a.Status < b.Status }
	case SortByDescription:
		less = func(a, b InventoryView) bool { return a.Description < b.Description }
	default:
		return nil, ErrUnknownSortKey
	}

	if reversed(p) {
		inner := less
		less = func(a, b InventoryView) bool { return inner(b, a) }
	}
	return less, nil
}

func shipmentLess(p QueryParams) (func(a, b ShipmentView) bool, error) {
	var less func(a, b ShipmentView) bool
	switch p.SortKey {
	case "":
		return nil, nil
	case SortByPartNumber:
		less = func(a, b ShipmentView) bool { return a.PartNumber < b.PartNumber }
	case SortByQuantity:
		less = func(a, b ShipmentView) bool { return a.Qty > b.Qty }
	case SortByStatus:
		less = func(a, b ShipmentView) bool { return a.Status < b.Status }
	case SortByDescription:
		less = func(a, b ShipmentView) bool { return a.Description < b.Description }
	default:
		return nil, ErrUnknownSortKey
	}

	if reversed(p) {
		inner := less
		less = func(a, b ShipmentView) bool { return inner(b, a) }
	}
	return less, nil
}

// reversed reports whether the explicit direction flips the key's default
// order. Quantity defaults to descending, everything else to ascending.
func reversed(p QueryParams) bool {
	switch p.Direction {
	case SortAsc:
		return p.SortKey == SortByQuantity
	case SortDesc:
		return p.SortKey != SortByQuantity
	default:
		return false
	}
}
