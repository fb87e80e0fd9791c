package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShipmentInput carries the fields of a new shipment. Qty uses the
// tolerant Quantity type so a malformed value from an upstream import
// degrades instead of rejecting the whole payload.
type ShipmentInput struct {
	Direction        ShipmentDirection `json:"direction"`
	ComponentID      int               `json:"component_id"`
	Qty              Quantity          `json:"qty"`
	PurchaseOrderID  *int              `json:"purchase_order_id"`
	WarehouseID      *int              `json:"warehouse_id"`
	Origin           string            `json:"origin"`
	Destination      string            `json:"destination"`
	Carrier          string            `json:"carrier"`
	TrackingNumber   string            `json:"tracking_number"`
	ShippingDate     *time.Time        `json:"shipping_date"`
	EstimatedArrival *time.Time        `json:"estimated_arrival"`
}

// ShipmentService manages inbound and outbound shipments and their
// lifecycle (PENDING → IN_TRANSIT → DELIVERED, or CANCELLED).
type ShipmentService interface {
	GetShipments(ctx context.Context) ([]Shipment, error)

	// CreateShipment records a new PENDING shipment and books its
	// quantity into the warehouse record's incoming_qty (inbound) or
	// outgoing_qty (outbound) atomically.
	CreateShipment(ctx context.Context, input ShipmentInput) (*Shipment, error)

	// UpdateStatus advances the lifecycle. Delivering an inbound
	// shipment moves its quantity from incoming to current stock in the
	// destination warehouse within one transaction; delivering an
	// outbound shipment deducts current stock. Invalid transitions are
	// rejected.
	UpdateStatus(ctx context.Context, id int, next ShipmentStatus) (*Shipment, error)
}

type shipmentService struct {
	pool *pgxpool.Pool
}

// NewShipmentService constructs a ShipmentService backed by PostgreSQL.
func NewShipmentService(pool *pgxpool.Pool) ShipmentService {
	return &shipmentService{pool: pool}
}

const shipmentColumns = `id, direction, component_id, qty, purchase_order_id, warehouse_id,
	origin, destination, carrier, tracking_number, status, shipping_date, estimated_arrival, created_at`

func scanShipment(row pgx.Row) (*Shipment, error) {
	var sh Shipment
	var qty int
	if err := row.Scan(&sh.ID, &sh.Direction, &sh.ComponentID, &qty,
		&sh.PurchaseOrderID, &sh.WarehouseID, &sh.Origin, &sh.Destination,
		&sh.Carrier, &sh.TrackingNumber, &sh.Status,
		&sh.ShippingDate, &sh.EstimatedArrival, &sh.CreatedAt); err != nil {
		return nil, err
	}
	sh.Qty = Qty(qty)
	return &sh, nil
}

func (s *shipmentService) GetShipments(ctx context.Context) ([]Shipment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+shipmentColumns+` FROM shipments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	var shipments []Shipment
	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		shipments = append(shipments, *sh)
	}
	return shipments, rows.Err()
}

func (s *shipmentService) CreateShipment(ctx context.Context, input ShipmentInput) (*Shipment, error) {
	if input.Direction != ShipmentInbound && input.Direction != ShipmentOutbound {
		return nil, fmt.Errorf("invalid shipment direction %q", input.Direction)
	}
	if input.ComponentID == 0 {
		return nil, errors.New("component_id is required")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sh, err := scanShipment(tx.QueryRow(ctx, `
		INSERT INTO shipments (direction, component_id, qty, purchase_order_id, warehouse_id,
		                       origin, destination, carrier, tracking_number, status,
		                       shipping_date, estimated_arrival)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'PENDING', $10, $11)
		RETURNING `+shipmentColumns,
		input.Direction, input.ComponentID, input.Qty.Value, input.PurchaseOrderID,
		input.WarehouseID, input.Origin, input.Destination, input.Carrier,
		input.TrackingNumber, input.ShippingDate, input.EstimatedArrival))
	if err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	if input.WarehouseID != nil {
		if err := s.bookPendingQty(ctx, tx, sh, 1); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit shipment: %w", err)
	}
	return sh, nil
}

func (s *shipmentService) UpdateStatus(ctx context.Context, id int, next ShipmentStatus) (*Shipment, error) {
	switch next {
	case ShipmentInTransit, ShipmentDelivered, ShipmentCancelled:
	default:
		return nil, fmt.Errorf("invalid shipment status %q", next)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sh, err := scanShipment(tx.QueryRow(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shipment %d not found", id)
		}
		return nil, fmt.Errorf("failed to lock shipment %d: %w", id, err)
	}

	if !sh.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("shipment %d cannot move from %s to %s", id, sh.Status, next)
	}

	if sh.WarehouseID != nil {
		switch next {
		case ShipmentDelivered:
			if err := s.applyDelivery(ctx, tx, sh); err != nil {
				return nil, err
			}
		case ShipmentCancelled:
			// Cancelling releases the pending incoming/outgoing booking.
			if err := s.bookPendingQty(ctx, tx, sh, -1); err != nil {
				return nil, err
			}
		}
	}

	updated, err := scanShipment(tx.QueryRow(ctx, `
		UPDATE shipments SET status = $2 WHERE id = $1
		RETURNING `+shipmentColumns, id, next))
	if err != nil {
		return nil, fmt.Errorf("failed to update shipment %d status: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit shipment %d status change: %w", id, err)
	}
	return updated, nil
}

// bookPendingQty adds (sign=+1) or releases (sign=-1) the shipment's
// quantity on the warehouse record's incoming_qty or outgoing_qty.
func (s *shipmentService) bookPendingQty(ctx context.Context, tx pgx.Tx, sh *Shipment, sign int) error {
	column := "incoming_qty"
	if sh.Direction == ShipmentOutbound {
		column = "outgoing_qty"
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO warehouse_inventory (component_id, warehouse_id, `+column+`)
		VALUES ($1, $2, GREATEST($3, 0))
		ON CONFLICT (component_id, warehouse_id)
		DO UPDATE SET `+column+` = GREATEST(warehouse_inventory.`+column+` + $3, 0),
		              last_updated = NOW()`,
		sh.ComponentID, *sh.WarehouseID, sign*sh.Qty.Value)
	if err != nil {
		return fmt.Errorf("failed to book pending qty for shipment %d: %w", sh.ID, err)
	}
	return nil
}

// applyDelivery moves the shipment quantity into (inbound) or out of
// (outbound) current stock and releases the pending booking. Outbound
// deliveries may drive current_qty negative; that is surfaced, not
// rejected — see the OUT_OF_STOCK classification rule.
func (s *shipmentService) applyDelivery(ctx context.Context, tx pgx.Tx, sh *Shipment) error {
	delta := sh.Qty.Value
	pending := "incoming_qty"
	if sh.Direction == ShipmentOutbound {
		delta = -delta
		pending = "outgoing_qty"
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO warehouse_inventory (component_id, warehouse_id, current_qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (component_id, warehouse_id)
		DO UPDATE SET current_qty = warehouse_inventory.current_qty + $3,
		              `+pending+` = GREATEST(warehouse_inventory.`+pending+` - $4, 0),
		              last_updated = NOW()`,
		sh.ComponentID, *sh.WarehouseID, delta, sh.Qty.Value)
	if err != nil {
		return fmt.Errorf("failed to apply delivery for shipment %d: %w", sh.ID, err)
	}
	return nil
}
