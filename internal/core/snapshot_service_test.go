package core_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"supplychain-console/internal/core"
)

// The fakes embed the service interface so only the fetches the snapshot
// actually calls need implementations.

type fakeCatalog struct {
	core.CatalogService
	components    []core.Component
	suppliers     []core.Supplier
	componentsErr error
	suppliersErr  error
}

func (f *fakeCatalog) GetComponents(ctx context.Context) ([]core.Component, error) {
	return f.components, f.componentsErr
}

func (f *fakeCatalog) GetSuppliers(ctx context.Context) ([]core.Supplier, error) {
	return f.suppliers, f.suppliersErr
}

type fakeWarehouses struct {
	core.WarehouseService
	warehouses    []core.Warehouse
	inventory     []core.WarehouseInventory
	warehousesErr error
	inventoryErr  error
}

func (f *fakeWarehouses) GetWarehouses(ctx context.Context) ([]core.Warehouse, error) {
	return f.warehouses, f.warehousesErr
}

func (f *fakeWarehouses) GetInventory(ctx context.Context) ([]core.WarehouseInventory, error) {
	return f.inventory, f.inventoryErr
}

type fakeShipments struct {
	core.ShipmentService
	shipments []core.Shipment
	err       error
}

func (f *fakeShipments) GetShipments(ctx context.Context) ([]core.Shipment, error) {
	return f.shipments, f.err
}

type fakePurchasing struct {
	core.PurchasingService
	orders []core.PurchaseOrder
	err    error
}

func (f *fakePurchasing) GetPurchaseOrders(ctx context.Context) ([]core.PurchaseOrder, error) {
	return f.orders, f.err
}

func TestSnapshotService_Load(t *testing.T) {
	svc := core.NewSnapshotService(
		&fakeCatalog{
			components: []core.Component{{ID: 1, Num: "CMP-001"}},
			suppliers:  []core.Supplier{{ID: 10, Name: "Acme Components"}},
		},
		&fakeWarehouses{
			warehouses: []core.Warehouse{{ID: 100, Name: "WH-A"}},
			inventory:  []core.WarehouseInventory{{ID: 1, ComponentID: 1, WarehouseID: 100, CurrentQty: core.Qty(6)}},
		},
		&fakeShipments{shipments: []core.Shipment{{ID: 1, Direction: core.ShipmentInbound}}},
		&fakePurchasing{orders: []core.PurchaseOrder{{ID: 50}}},
	)

	snap, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", snap.Missing)
	}
	if len(snap.Components) != 1 || len(snap.Suppliers) != 1 || len(snap.Warehouses) != 1 ||
		len(snap.Inventory) != 1 || len(snap.Shipments) != 1 || len(snap.PurchaseOrders) != 1 {
		t.Errorf("collections not all loaded: %+v", snap)
	}
}

func TestSnapshotService_PartialFailureDegrades(t *testing.T) {
	// One failed fetch must not corrupt the siblings: the collection
	// lands in Missing and the snapshot stays joinable.
	svc := core.NewSnapshotService(
		&fakeCatalog{
			components: []core.Component{{ID: 1, Num: "CMP-001"}},
			suppliers:  []core.Supplier{{ID: 10, Name: "Acme Components"}},
		},
		&fakeWarehouses{
			warehouses:   []core.Warehouse{{ID: 100, Name: "WH-A"}},
			inventoryErr: errors.New("connection reset"),
		},
		&fakeShipments{shipments: []core.Shipment{{ID: 1, ComponentID: 1, Direction: core.ShipmentInbound}}},
		&fakePurchasing{},
	)

	snap, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("one failed fetch must degrade, not error: %v", err)
	}
	if !reflect.DeepEqual(snap.Missing, []string{"inventory"}) {
		t.Errorf("Missing = %v, want [inventory]", snap.Missing)
	}
	if len(snap.Components) != 1 || len(snap.Warehouses) != 1 || len(snap.Shipments) != 1 {
		t.Errorf("sibling collections lost: %+v", snap)
	}

	// The join still runs over whatever loaded.
	if views := core.BuildShipmentViews(snap); len(views) != 1 || views[0].PartNumber != "CMP-001" {
		t.Errorf("degraded snapshot no longer joins: %+v", views)
	}
}

func TestSnapshotService_MissingIsSorted(t *testing.T) {
	svc := core.NewSnapshotService(
		&fakeCatalog{suppliersErr: errors.New("boom")},
		&fakeWarehouses{inventoryErr: errors.New("boom")},
		&fakeShipments{},
		&fakePurchasing{err: errors.New("boom")},
	)

	snap, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(snap.Missing, []string{"inventory", "purchase_orders", "suppliers"}) {
		t.Errorf("Missing = %v, want sorted [inventory purchase_orders suppliers]", snap.Missing)
	}
}

func TestSnapshotService_AllFetchesFailing(t *testing.T) {
	boom := errors.New("database is down")
	svc := core.NewSnapshotService(
		&fakeCatalog{componentsErr: boom, suppliersErr: boom},
		&fakeWarehouses{warehousesErr: boom, inventoryErr: boom},
		&fakeShipments{err: boom},
		&fakePurchasing{err: boom},
	)

	snap, err := svc.Load(context.Background())
	if err == nil {
		t.Fatal("all six fetches failing must return an error, got nil")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error should wrap the fetch failures, got %v", err)
	}
	if snap != nil {
		t.Errorf("snapshot should be nil on total failure, got %+v", snap)
	}
}
