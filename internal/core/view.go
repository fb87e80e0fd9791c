package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryView is the denormalized read view of one WarehouseInventory
// record joined with its component, that component's supplier, and its
// warehouse. Views live for one aggregation pass: they are recomputed on
// every refresh and never mutated in place.
type InventoryView struct {
	RecordID        int             `json:"record_id"`
	ComponentID     int             `json:"component_id"`
	WarehouseID     int             `json:"warehouse_id"`
	PartNumber      string          `json:"part_number"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	SupplierName    string          `json:"supplier_name"`
	SupplierPartNum string          `json:"supplier_part_number,omitempty"`
	WarehouseName   string          `json:"warehouse_name"`
	Location        string          `json:"location"`
	CurrentQty      int             `json:"current_qty"`
	IncomingQty     int             `json:"incoming_qty"`
	OutgoingQty     int             `json:"outgoing_qty"`
	RawQty          string          `json:"raw_qty,omitempty"` // set when the upstream quantity was malformed
	Status          Status          `json:"status"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	LineValue       decimal.Decimal `json:"line_value"` // CurrentQty × UnitCost, zero for orphaned components
	LastUpdated     time.Time       `json:"last_updated"`
}

// ShipmentView is a Shipment joined with its component description and,
// for inbound shipments, the originating supplier resolved through the
// purchase order.
type ShipmentView struct {
	ShipmentID       int               `json:"shipment_id"`
	Direction        ShipmentDirection `json:"direction"`
	PartNumber       string            `json:"part_number"`
	Description      string            `json:"description"`
	SupplierName     string            `json:"supplier_name,omitempty"`
	Qty              int               `json:"qty"`
	Status           ShipmentStatus    `json:"status"`
	Carrier          string            `json:"carrier,omitempty"`
	TrackingNumber   string            `json:"tracking_number,omitempty"`
	Origin           string            `json:"origin,omitempty"`
	Destination      string            `json:"destination,omitempty"`
	ShippingDate     *time.Time        `json:"shipping_date,omitempty"`
	EstimatedArrival *time.Time        `json:"estimated_arrival,omitempty"`
}

// Snapshot is one consistent capture of the independently fetched source
// collections. It is a plain value: the join functions read it and never
// write to it. Missing lists the collections whose fetch failed, so the
// caller can decide between aborting and degrading.
type Snapshot struct {
	Components     []Component
	Suppliers      []Supplier
	Warehouses     []Warehouse
	Inventory      []WarehouseInventory
	Shipments      []Shipment
	PurchaseOrders []PurchaseOrder
	Missing        []string
}
