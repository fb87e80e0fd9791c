package core

import "github.com/shopspring/decimal"

// UnknownSupplierName is the sentinel substituted when a component's
// supplier reference does not resolve. Downstream code never null-checks
// supplier names.
const UnknownSupplierName = "Unknown Supplier"

// BuildInventoryViews joins every WarehouseInventory record in the
// snapshot with its component, supplier, and warehouse, producing exactly
// one InventoryView per source record — orphaned records (dangling
// component or warehouse ids) are kept with empty-string placeholders so
// the user still sees the stock line and can investigate.
//
// Lookups go through id→record indexes built once per call; the pass is
// O(n) in total input size. The snapshot is read-only to this function.
func BuildInventoryViews(snap *Snapshot) []InventoryView {
	components := indexComponents(snap.Components)
	suppliers := indexSuppliers(snap.Suppliers)
	warehouses := indexWarehouses(snap.Warehouses)

	views := make([]InventoryView, 0, len(snap.Inventory))
	for _, rec := range snap.Inventory {
		v := InventoryView{
			RecordID:    rec.ID,
			ComponentID: rec.ComponentID,
			WarehouseID: rec.WarehouseID,
			CurrentQty:  rec.CurrentQty.Value,
			IncomingQty: rec.IncomingQty.Value,
			OutgoingQty: rec.OutgoingQty.Value,
			RawQty:      rec.CurrentQty.Raw,
			Status:      Classify(rec.CurrentQty.Value),
			LastUpdated: rec.LastUpdated,
		}

		if c, ok := components[rec.ComponentID]; ok {
			v.PartNumber = c.Num
			v.Description = c.Description
			v.Category = c.Category
			v.SupplierPartNum = c.SupplierPartNum
			v.UnitCost = c.UnitCost
			v.LineValue = c.UnitCost.Mul(decimal.NewFromInt(int64(rec.CurrentQty.Value)))
			v.SupplierName = resolveSupplierName(suppliers, c.SupplierID)
		} else {
			// Orphaned stock line: keep it visible with placeholders.
			v.SupplierName = UnknownSupplierName
		}

		if w, ok := warehouses[rec.WarehouseID]; ok {
			v.WarehouseName = w.Name
			v.Location = w.Location
		}

		views = append(views, v)
	}
	return views
}

// BuildShipmentViews joins every Shipment with its component description
// and, for inbound shipments, the supplier name resolved through the
// purchase order. One view per source shipment, orphans included.
func BuildShipmentViews(snap *Snapshot) []ShipmentView {
	components := indexComponents(snap.Components)
	suppliers := indexSuppliers(snap.Suppliers)
	orders := make(map[int]PurchaseOrder, len(snap.PurchaseOrders))
	for _, po := range snap.PurchaseOrders {
		orders[po.ID] = po
	}

	views := make([]ShipmentView, 0, len(snap.Shipments))
	for _, sh := range snap.Shipments {
		v := ShipmentView{
			ShipmentID:       sh.ID,
			Direction:        sh.Direction,
			Qty:              sh.Qty.Value,
			Status:           sh.Status,
			Carrier:          sh.Carrier,
			TrackingNumber:   sh.TrackingNumber,
			Origin:           sh.Origin,
			Destination:      sh.Destination,
			ShippingDate:     sh.ShippingDate,
			EstimatedArrival: sh.EstimatedArrival,
		}

		if c, ok := components[sh.ComponentID]; ok {
			v.PartNumber = c.Num
			v.Description = c.Description
		}

		if sh.Direction == ShipmentInbound {
			v.SupplierName = UnknownSupplierName
			if sh.PurchaseOrderID != nil {
				if po, ok := orders[*sh.PurchaseOrderID]; ok {
					v.SupplierName = resolveSupplierName(suppliers, po.SupplierID)
				}
			}
		}

		views = append(views, v)
	}
	return views
}

func indexComponents(components []Component) map[int]Component {
	m := make(map[int]Component, len(components))
	for _, c := range components {
		m[c.ID] = c
	}
	return m
}

func indexSuppliers(suppliers []Supplier) map[int]Supplier {
	m := make(map[int]Supplier, len(suppliers))
	for _, s := range suppliers {
		m[s.ID] = s
	}
	return m
}

func indexWarehouses(warehouses []Warehouse) map[int]Warehouse {
	m := make(map[int]Warehouse, len(warehouses))
	for _, w := range warehouses {
		m[w.ID] = w
	}
	return m
}

func resolveSupplierName(suppliers map[int]Supplier, id *int) string {
	if id != nil {
		if s, ok := suppliers[*id]; ok {
			return s.Name
		}
	}
	return UnknownSupplierName
}
