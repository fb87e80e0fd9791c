package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component is a purchasable part in the catalog. Num is the part number,
// unique within the organization. SupplierID may be nil (or dangling) —
// the join stage substitutes a sentinel supplier rather than failing.
type Component struct {
	ID              int             `json:"id"`
	Num             string          `json:"num"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	SupplierID      *int            `json:"supplier_id,omitempty"`
	SupplierPartNum string          `json:"supplier_part_number,omitempty"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Supplier is referenced, never owned, by components and purchase orders.
type Supplier struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Warehouse is a physical storage location. Capacity and CurrentOccupancy
// are optional: nil means unknown, which downstream utilization math must
// keep distinct from zero.
type Warehouse struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Location         string    `json:"location"`
	Capacity         *int      `json:"capacity,omitempty"`
	CurrentOccupancy *int      `json:"current_occupancy,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// WarehouseInventory is the authoritative stock record for one
// (component, warehouse) pair. CurrentQty can legitimately be negative —
// upstream adjustments emit such rows and they must surface, not error.
type WarehouseInventory struct {
	ID          int       `json:"id"`
	ComponentID int       `json:"component_id"`
	WarehouseID int       `json:"warehouse_id"`
	CurrentQty  Quantity  `json:"current_qty"`
	IncomingQty Quantity  `json:"incoming_qty"`
	OutgoingQty Quantity  `json:"outgoing_qty"`
	LastUpdated time.Time `json:"last_updated"`
}

type ShipmentDirection string

const (
	ShipmentInbound  ShipmentDirection = "INBOUND"
	ShipmentOutbound ShipmentDirection = "OUTBOUND"
)

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "PENDING"
	ShipmentInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentDelivered ShipmentStatus = "DELIVERED"
	ShipmentCancelled ShipmentStatus = "CANCELLED"
)

// CanTransitionTo reports whether the shipment lifecycle permits moving
// from s to next. Terminal states (DELIVERED, CANCELLED) permit nothing.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	switch s {
	case ShipmentPending:
		return next == ShipmentInTransit || next == ShipmentCancelled
	case ShipmentInTransit:
		return next == ShipmentDelivered || next == ShipmentCancelled
	default:
		return false
	}
}

// ValidShipmentStatusFilter reports whether s names a ShipmentStatus or
// the "All" wildcard. The empty string is treated the same as "All".
func ValidShipmentStatusFilter(s string) bool {
	switch ShipmentStatus(s) {
	case ShipmentPending, ShipmentInTransit, ShipmentDelivered, ShipmentCancelled:
		return true
	}
	return s == "" || s == "All"
}

// Shipment is an inbound or outbound goods movement. WarehouseID is the
// destination for inbound shipments and the origin for outbound ones.
type Shipment struct {
	ID               int               `json:"id"`
	Direction        ShipmentDirection `json:"direction"`
	ComponentID      int               `json:"component_id"`
	Qty              Quantity          `json:"qty"`
	PurchaseOrderID  *int              `json:"purchase_order_id,omitempty"`
	WarehouseID      *int              `json:"warehouse_id,omitempty"`
	Origin           string            `json:"origin,omitempty"`
	Destination      string            `json:"destination,omitempty"`
	Carrier          string            `json:"carrier,omitempty"`
	TrackingNumber   string            `json:"tracking_number,omitempty"`
	Status           ShipmentStatus    `json:"status"`
	ShippingDate     *time.Time        `json:"shipping_date,omitempty"`
	EstimatedArrival *time.Time        `json:"estimated_arrival,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type PurchaseOrderStatus string

const (
	POStatusDraft    PurchaseOrderStatus = "DRAFT"
	POStatusApproved PurchaseOrderStatus = "APPROVED"
	POStatusReceived PurchaseOrderStatus = "RECEIVED"
	POStatusClosed   PurchaseOrderStatus = "CLOSED"
)

// PurchaseOrder is the finance-side record linking inbound shipments to
// the supplier they were ordered from.
type PurchaseOrder struct {
	ID          int                 `json:"id"`
	OrderNumber string              `json:"order_number"`
	SupplierID  *int                `json:"supplier_id,omitempty"`
	Status      PurchaseOrderStatus `json:"status"`
	Total       decimal.Decimal     `json:"total"`
	OrderDate   time.Time           `json:"order_date"`
	CreatedAt   time.Time           `json:"created_at"`
}
