package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SnapshotService captures one consistent Snapshot of the source
// collections by fanning out the fetches concurrently. A single failed
// fetch does not corrupt the others: the collection is recorded in
// Snapshot.Missing and the join proceeds over whatever loaded. Only when
// every fetch fails is an error returned.
type SnapshotService interface {
	Load(ctx context.Context) (*Snapshot, error)
}

type snapshotService struct {
	catalog    CatalogService
	warehouses WarehouseService
	shipments  ShipmentService
	purchasing PurchasingService
}

// NewSnapshotService constructs a SnapshotService over the per-entity
// services.
func NewSnapshotService(catalog CatalogService, warehouses WarehouseService,
	shipments ShipmentService, purchasing PurchasingService) SnapshotService {
	return &snapshotService{
		catalog:    catalog,
		warehouses: warehouses,
		shipments:  shipments,
		purchasing: purchasing,
	}
}

func (s *snapshotService) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	var mu sync.Mutex
	failed := make(map[string]error)

	// Each closure returns nil even on failure: a fetch error must not
	// cancel the sibling fetches. Failures land in snap.Missing instead.
	fetch := func(name string, fn func() error) func() error {
		return func() error {
			if err := fn(); err != nil {
				mu.Lock()
				failed[name] = err
				mu.Unlock()
				log.Printf("snapshot: %s fetch failed: %v", name, err)
			}
			return nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(fetch("components", func() (err error) {
		snap.Components, err = s.catalog.GetComponents(gctx)
		return err
	}))
	g.Go(fetch("suppliers", func() (err error) {
		snap.Suppliers, err = s.catalog.GetSuppliers(gctx)
		return err
	}))
	g.Go(fetch("warehouses", func() (err error) {
		snap.Warehouses, err = s.warehouses.GetWarehouses(gctx)
		return err
	}))
	g.Go(fetch("inventory", func() (err error) {
		snap.Inventory, err = s.warehouses.GetInventory(gctx)
		return err
	}))
	g.Go(fetch("shipments", func() (err error) {
		snap.Shipments, err = s.shipments.GetShipments(gctx)
		return err
	}))
	g.Go(fetch("purchase_orders", func() (err error) {
		snap.PurchaseOrders, err = s.purchasing.GetPurchaseOrders(gctx)
		return err
	}))
	_ = g.Wait()

	if len(failed) > 0 {
		for name := range failed {
			snap.Missing = append(snap.Missing, name)
		}
		sort.Strings(snap.Missing)
	}

	// Six collections feed the snapshot; all six failing means the data
	// source itself is down, and there is nothing to degrade to.
	if len(failed) == 6 {
		errs := make([]error, 0, len(failed))
		for _, err := range failed {
			errs = append(errs, err)
		}
		return nil, fmt.Errorf("snapshot load failed entirely: %w", errors.Join(errs...))
	}
	return snap, nil
}
