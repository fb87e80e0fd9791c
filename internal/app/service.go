package app

import (
	"context"

	"supplychain-console/internal/core"
)

// ApplicationService is the single interface all adapters call. It
// decouples presentation from business logic: implementations contain no
// display logic of any kind.
type ApplicationService interface {
	// ── Catalog ───────────────────────────────────────────────────────────────

	// ListComponents returns all active components.
	ListComponents(ctx context.Context) (*ComponentListResult, error)

	// GetComponent returns one component by id.
	GetComponent(ctx context.Context, id int) (*ComponentResult, error)

	// CreateComponent adds a component to the catalog.
	CreateComponent(ctx context.Context, req core.ComponentInput) (*ComponentResult, error)

	// UpdateComponent replaces the editable fields of a component.
	UpdateComponent(ctx context.Context, id int, req core.ComponentInput) (*ComponentResult, error)

	// DeactivateComponent soft-deletes a component.
	DeactivateComponent(ctx context.Context, id int) error

	// ListSuppliers returns all active suppliers.
	ListSuppliers(ctx context.Context) (*SupplierListResult, error)

	// CreateSupplier adds a supplier.
	CreateSupplier(ctx context.Context, req core.SupplierInput) (*SupplierResult, error)

	// ── Warehouses & stock records ────────────────────────────────────────────

	// ListWarehouses returns all active warehouses.
	ListWarehouses(ctx context.Context) (*WarehouseListResult, error)

	// CreateWarehouse adds a warehouse.
	CreateWarehouse(ctx context.Context, req core.WarehouseInput) (*WarehouseResult, error)

	// ListInventory returns the raw per-warehouse stock records.
	ListInventory(ctx context.Context) (*InventoryRecordsResult, error)

	// AdjustInventory applies a signed quantity delta to a stock record.
	AdjustInventory(ctx context.Context, req core.AdjustInventoryInput) (*InventoryRecordResult, error)

	// ── Aggregated views (the refresh cycle) ──────────────────────────────────

	// GetInventoryOverview captures a snapshot, joins it into inventory
	// views, and applies the query parameters. Missing names collections
	// whose fetch failed (the overview degrades rather than aborting).
	GetInventoryOverview(ctx context.Context, params core.QueryParams) (*InventoryOverviewResult, error)

	// GetInventorySummary returns the dashboard tallies: per-status
	// counts, warehouse utilization, and total stock value.
	GetInventorySummary(ctx context.Context) (*InventorySummaryResult, error)

	// ExportInventoryCSV renders the (optionally filtered) overview as CSV.
	ExportInventoryCSV(ctx context.Context, params core.QueryParams) (string, error)

	// RenderInventoryReport renders the printable text report. generatedAt
	// is the only timestamp embedded in the output.
	RenderInventoryReport(ctx context.Context, params core.QueryParams) (string, error)

	// GetShipmentOverview joins shipments with component and supplier
	// data and applies the query parameters.
	GetShipmentOverview(ctx context.Context, params core.QueryParams) (*ShipmentOverviewResult, error)

	// ── Shipments ─────────────────────────────────────────────────────────────

	// ListShipments returns the raw shipment records, newest first.
	ListShipments(ctx context.Context) (*ShipmentListResult, error)

	// CreateShipment records a new PENDING shipment.
	CreateShipment(ctx context.Context, req core.ShipmentInput) (*ShipmentResult, error)

	// UpdateShipmentStatus advances a shipment through its lifecycle.
	UpdateShipmentStatus(ctx context.Context, id int, status core.ShipmentStatus) (*ShipmentResult, error)

	// ── Purchasing / finance ──────────────────────────────────────────────────

	// ListPurchaseOrders returns all purchase orders, newest first.
	ListPurchaseOrders(ctx context.Context) (*PurchaseOrderListResult, error)

	// CreatePurchaseOrder records a new DRAFT purchase order.
	CreatePurchaseOrder(ctx context.Context, req core.PurchaseOrderInput) (*PurchaseOrderResult, error)

	// GetSupplierSpend returns per-supplier purchase totals, highest first.
	GetSupplierSpend(ctx context.Context) (*SupplierSpendResult, error)

	// ── Assistant ─────────────────────────────────────────────────────────────

	// InterpretSearch sends a natural-language question to the AI agent
	// and returns validated query parameters plus the matching overview.
	InterpretSearch(ctx context.Context, text string) (*AssistantSearchResult, error)
}
