package app

import (
	"supplychain-console/internal/core"
)

// ComponentListResult is returned by ListComponents.
type ComponentListResult struct {
	Components []core.Component `json:"components"`
}

// ComponentResult is returned by single-component operations.
type ComponentResult struct {
	Component *core.Component `json:"component"`
}

// SupplierListResult is returned by ListSuppliers.
type SupplierListResult struct {
	Suppliers []core.Supplier `json:"suppliers"`
}

// SupplierResult is returned by CreateSupplier.
type SupplierResult struct {
	Supplier *core.Supplier `json:"supplier"`
}

// WarehouseListResult is returned by ListWarehouses.
type WarehouseListResult struct {
	Warehouses []core.Warehouse `json:"warehouses"`
}

// WarehouseResult is returned by CreateWarehouse.
type WarehouseResult struct {
	Warehouse *core.Warehouse `json:"warehouse"`
}

// InventoryRecordsResult is returned by ListInventory.
type InventoryRecordsResult struct {
	Records []core.WarehouseInventory `json:"records"`
}

// InventoryRecordResult is returned by AdjustInventory.
type InventoryRecordResult struct {
	Record *core.WarehouseInventory `json:"record"`
}

// InventoryOverviewResult is returned by GetInventoryOverview. Missing
// names source collections whose fetch failed for this refresh.
type InventoryOverviewResult struct {
	Views   []core.InventoryView `json:"views"`
	Missing []string             `json:"missing,omitempty"`
}

// InventorySummaryResult is returned by GetInventorySummary.
type InventorySummaryResult struct {
	Summary core.InventorySummary `json:"summary"`
	Missing []string              `json:"missing,omitempty"`
}

// ShipmentOverviewResult is returned by GetShipmentOverview.
type ShipmentOverviewResult struct {
	Views   []core.ShipmentView `json:"views"`
	Missing []string            `json:"missing,omitempty"`
}

// ShipmentListResult is returned by ListShipments.
type ShipmentListResult struct {
	Shipments []core.Shipment `json:"shipments"`
}

// ShipmentResult is returned by shipment lifecycle operations.
type ShipmentResult struct {
	Shipment *core.Shipment `json:"shipment"`
}

// PurchaseOrderListResult is returned by ListPurchaseOrders.
type PurchaseOrderListResult struct {
	Orders []core.PurchaseOrder `json:"orders"`
}

// PurchaseOrderResult is returned by CreatePurchaseOrder.
type PurchaseOrderResult struct {
	Order *core.PurchaseOrder `json:"order"`
}

// SupplierSpendResult is returned by GetSupplierSpend.
type SupplierSpendResult struct {
	Spend []core.SupplierSpend `json:"spend"`
}

// AssistantSearchResult is returned by InterpretSearch: the interpreted
// parameters plus the overview they select.
type AssistantSearchResult struct {
	Proposal *core.SearchProposal `json:"proposal"`
	Views    []core.InventoryView `json:"views"`
	Missing  []string             `json:"missing,omitempty"`
}
