package app

import (
	"context"
	"fmt"
	"time"

	"supplychain-console/internal/ai"
	"supplychain-console/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
)

type appService struct {
	pool       *pgxpool.Pool
	catalog    core.CatalogService
	warehouses core.WarehouseService
	shipments  core.ShipmentService
	purchasing core.PurchasingService
	snapshots  core.SnapshotService
	agent      *ai.Agent
	now        func() time.Time
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	pool *pgxpool.Pool,
	catalog core.CatalogService,
	warehouses core.WarehouseService,
	shipments core.ShipmentService,
	purchasing core.PurchasingService,
	snapshots core.SnapshotService,
	agent *ai.Agent,
) ApplicationService {
	return &appService{
		pool:       pool,
		catalog:    catalog,
		warehouses: warehouses,
		shipments:  shipments,
		purchasing: purchasing,
		snapshots:  snapshots,
		agent:      agent,
		now:        time.Now,
	}
}

// ── Catalog ───────────────────────────────────────────────────────────────────

func (s *appService) ListComponents(ctx context.Context) (*ComponentListResult, error) {
	components, err := s.catalog.GetComponents(ctx)
	if err != nil {
		return nil, err
	}
	return &ComponentListResult{Components: components}, nil
}

func (s *appService) GetComponent(ctx context.Context, id int) (*ComponentResult, error) {
	c, err := s.catalog.GetComponent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ComponentResult{Component: c}, nil
}

func (s *appService) CreateComponent(ctx context.Context, req core.ComponentInput) (*ComponentResult, error) {
	c, err := s.catalog.CreateComponent(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ComponentResult{Component: c}, nil
}

func (s *appService) UpdateComponent(ctx context.Context, id int, req core.ComponentInput) (*ComponentResult, error) {
	c, err := s.catalog.UpdateComponent(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return &ComponentResult{Component: c}, nil
}

func (s *appService) DeactivateComponent(ctx context.Context, id int) error {
	return s.catalog.DeactivateComponent(ctx, id)
}

func (s *appService) ListSuppliers(ctx context.Context) (*SupplierListResult, error) {
	suppliers, err := s.catalog.GetSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return &SupplierListResult{Suppliers: suppliers}, nil
}

func (s *appService) CreateSupplier(ctx context.Context, req core.SupplierInput) (*SupplierResult, error) {
	sp, err := s.catalog.CreateSupplier(ctx, req)
	if err != nil {
		return nil, err
	}
	return &SupplierResult{Supplier: sp}, nil
}

// ── Warehouses & stock records ────────────────────────────────────────────────

func (s *appService) ListWarehouses(ctx context.Context) (*WarehouseListResult, error) {
	warehouses, err := s.warehouses.GetWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	return &WarehouseListResult{Warehouses: warehouses}, nil
}

func (s *appService) CreateWarehouse(ctx context.Context, req core.WarehouseInput) (*WarehouseResult, error) {
	w, err := s.warehouses.CreateWarehouse(ctx, req)
	if err != nil {
		return nil, err
	}
	return &WarehouseResult{Warehouse: w}, nil
}

func (s *appService) ListInventory(ctx context.Context) (*InventoryRecordsResult, error) {
	records, err := s.warehouses.GetInventory(ctx)
	if err != nil {
		return nil, err
	}
	return &InventoryRecordsResult{Records: records}, nil
}

func (s *appService) AdjustInventory(ctx context.Context, req core.AdjustInventoryInput) (*InventoryRecordResult, error) {
	rec, err := s.warehouses.AdjustInventory(ctx, req)
	if err != nil {
		return nil, err
	}
	return &InventoryRecordResult{Record: rec}, nil
}

// ── Aggregated views ──────────────────────────────────────────────────────────

// overview runs one refresh cycle: snapshot → join → query.
func (s *appService) overview(ctx context.Context, params core.QueryParams) ([]core.InventoryView, *core.Snapshot, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	views, err := core.QueryInventory(core.BuildInventoryViews(snap), params)
	if err != nil {
		return nil, nil, err
	}
	return views, snap, nil
}

func (s *appService) GetInventoryOverview(ctx context.Context, params core.QueryParams) (*InventoryOverviewResult, error) {
	views, snap, err := s.overview(ctx, params)
	if err != nil {
		return nil, err
	}
	return &InventoryOverviewResult{Views: views, Missing: snap.Missing}, nil
}

func (s *appService) GetInventorySummary(ctx context.Context) (*InventorySummaryResult, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	summary := core.SummarizeInventory(core.BuildInventoryViews(snap), snap.Warehouses)
	return &InventorySummaryResult{Summary: summary, Missing: snap.Missing}, nil
}

func (s *appService) ExportInventoryCSV(ctx context.Context, params core.QueryParams) (string, error) {
	views, _, err := s.overview(ctx, params)
	if err != nil {
		return "", err
	}
	return core.InventoryCSV(views), nil
}

func (s *appService) RenderInventoryReport(ctx context.Context, params core.QueryParams) (string, error) {
	views, snap, err := s.overview(ctx, params)
	if err != nil {
		return "", err
	}
	summary := core.SummarizeInventory(views, snap.Warehouses)
	return core.InventoryReport(views, summary, s.now()), nil
}

func (s *appService) GetShipmentOverview(ctx context.Context, params core.QueryParams) (*ShipmentOverviewResult, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	views, err := core.QueryShipments(core.BuildShipmentViews(snap), params)
	if err != nil {
		return nil, err
	}
	return &ShipmentOverviewResult{Views: views, Missing: snap.Missing}, nil
}

// ── Shipments ─────────────────────────────────────────────────────────────────

func (s *appService) ListShipments(ctx context.Context) (*ShipmentListResult, error) {
	shipments, err := s.shipments.GetShipments(ctx)
	if err != nil {
		return nil, err
	}
	return &ShipmentListResult{Shipments: shipments}, nil
}

func (s *appService) CreateShipment(ctx context.Context, req core.ShipmentInput) (*ShipmentResult, error) {
	sh, err := s.shipments.CreateShipment(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ShipmentResult{Shipment: sh}, nil
}

func (s *appService) UpdateShipmentStatus(ctx context.Context, id int, status core.ShipmentStatus) (*ShipmentResult, error) {
	sh, err := s.shipments.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return &ShipmentResult{Shipment: sh}, nil
}

// ── Purchasing / finance ──────────────────────────────────────────────────────

func (s *appService) ListPurchaseOrders(ctx context.Context) (*PurchaseOrderListResult, error) {
	orders, err := s.purchasing.GetPurchaseOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &PurchaseOrderListResult{Orders: orders}, nil
}

func (s *appService) CreatePurchaseOrder(ctx context.Context, req core.PurchaseOrderInput) (*PurchaseOrderResult, error) {
	po, err := s.purchasing.CreatePurchaseOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	return &PurchaseOrderResult{Order: po}, nil
}

func (s *appService) GetSupplierSpend(ctx context.Context) (*SupplierSpendResult, error) {
	spend, err := s.purchasing.GetSupplierSpend(ctx)
	if err != nil {
		return nil, err
	}
	return &SupplierSpendResult{Spend: spend}, nil
}

// ── Assistant ─────────────────────────────────────────────────────────────────

func (s *appService) InterpretSearch(ctx context.Context, text string) (*AssistantSearchResult, error) {
	if s.agent == nil {
		return nil, fmt.Errorf("search assistant is not configured")
	}
	proposal, err := s.agent.InterpretSearch(ctx, text)
	if err != nil {
		return nil, err
	}

	views, snap, err := s.overview(ctx, proposal.Params())
	if err != nil {
		return nil, err
	}
	return &AssistantSearchResult{Proposal: proposal, Views: views, Missing: snap.Missing}, nil
}
