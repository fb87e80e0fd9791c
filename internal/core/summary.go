package core

import (
	"github.com/shopspring/decimal"
)

// StatusCounts is the per-status tally over one collection of views.
// InStock + LowStock + OutOfStock always equals Total: the statuses
// partition the collection, no record is double-counted or dropped.
type StatusCounts struct {
	Total      int `json:"total"`
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// WarehouseUtilization is occupancy over capacity for one warehouse.
// Percent is nil when the ratio is undefined — capacity unknown, or a
// known capacity of zero — because "0% full" and "undefined" are
// different answers and callers must be able to tell them apart.
// Capacity stays non-nil for the known-zero case so renderers can still
// distinguish it from a missing figure.
type WarehouseUtilization struct {
	WarehouseID int      `json:"warehouse_id"`
	Name        string   `json:"name"`
	Occupied    int      `json:"occupied"`
	Capacity    *int     `json:"capacity,omitempty"`
	Percent     *float64 `json:"percent,omitempty"`
}

// InventorySummary feeds the dashboard cards.
type InventorySummary struct {
	Counts      StatusCounts           `json:"counts"`
	Utilization []WarehouseUtilization `json:"utilization"`
	TotalValue  decimal.Decimal        `json:"total_value"`
}

// SummarizeInventory computes the per-status tally, per-warehouse
// utilization, and total stock value over views. warehouses supplies
// capacity/occupancy figures and the ordering of the utilization list;
// a warehouse's occupied count falls back to the sum of its positive
// stock quantities when CurrentOccupancy is not maintained upstream.
func SummarizeInventory(views []InventoryView, warehouses []Warehouse) InventorySummary {
	sum := InventorySummary{TotalValue: decimal.Zero}

	qtyByWarehouse := make(map[int]int, len(warehouses))
	for _, v := range views {
		sum.Counts.Total++
		switch v.Status {
		case InStock:
			sum.Counts.InStock++
		case LowStock:
			sum.Counts.LowStock++
		case OutOfStock:
			sum.Counts.OutOfStock++
		}
		sum.TotalValue = sum.TotalValue.Add(v.LineValue)
		if v.CurrentQty > 0 {
			qtyByWarehouse[v.WarehouseID] += v.CurrentQty
		}
	}

	sum.Utilization = make([]WarehouseUtilization, 0, len(warehouses))
	for _, w := range warehouses {
		u := WarehouseUtilization{WarehouseID: w.ID, Name: w.Name, Capacity: w.Capacity}
		if w.CurrentOccupancy != nil {
			u.Occupied = *w.CurrentOccupancy
		} else {
			u.Occupied = qtyByWarehouse[w.ID]
		}
		if w.Capacity != nil && *w.Capacity > 0 {
			pct := float64(u.Occupied) / float64(*w.Capacity) * 100
			u.Percent = &pct
		}
		sum.Utilization = append(sum.Utilization, u)
	}

	return sum
}
