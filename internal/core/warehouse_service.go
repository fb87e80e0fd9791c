package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WarehouseInput carries the editable fields of a warehouse.
type WarehouseInput struct {
	Name             string `json:"name"`
	Location         string `json:"location"`
	Capacity         *int   `json:"capacity"`
	CurrentOccupancy *int   `json:"current_occupancy"`
}

// AdjustInventoryInput moves a (component, warehouse) stock record by a
// signed delta. The result may go negative: upstream processes record
// back-orders and correction drift that way, and the console surfaces
// them as OUT_OF_STOCK lines rather than rejecting the adjustment.
type AdjustInventoryInput struct {
	ComponentID int      `json:"component_id"`
	WarehouseID int      `json:"warehouse_id"`
	Delta       Quantity `json:"delta"`
	Note        string   `json:"note"`
}

// WarehouseService manages warehouses and the authoritative per-warehouse
// stock records.
type WarehouseService interface {
	GetWarehouses(ctx context.Context) ([]Warehouse, error)
	CreateWarehouse(ctx context.Context, input WarehouseInput) (*Warehouse, error)

	// GetInventory returns the raw WarehouseInventory records. Joining
	// them into views is the aggregation core's job, not SQL's: the
	// console fetches the collections independently and joins in memory.
	GetInventory(ctx context.Context) ([]WarehouseInventory, error)

	// AdjustInventory upserts the (component, warehouse) record and
	// applies the signed delta to current_qty.
	AdjustInventory(ctx context.Context, input AdjustInventoryInput) (*WarehouseInventory, error)
}

type warehouseService struct {
	pool *pgxpool.Pool
}

// NewWarehouseService constructs a WarehouseService backed by PostgreSQL.
func NewWarehouseService(pool *pgxpool.Pool) WarehouseService {
	return &warehouseService{pool: pool}
}

func (s *warehouseService) GetWarehouses(ctx context.Context) ([]Warehouse, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, location, capacity, current_occupancy, is_active, created_at
		FROM warehouses
		WHERE is_active = true
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []Warehouse
	for rows.Next() {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.Capacity,
			&w.CurrentOccupancy, &w.IsActive, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, input WarehouseInput) (*Warehouse, error) {
	if input.Name == "" {
		return nil, errors.New("warehouse name is required")
	}
	w := &Warehouse{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO warehouses (name, location, capacity, current_occupancy)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, location, capacity, current_occupancy, is_active, created_at`,
		input.Name, input.Location, input.Capacity, input.CurrentOccupancy,
	).Scan(&w.ID, &w.Name, &w.Location, &w.Capacity, &w.CurrentOccupancy, &w.IsActive, &w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create warehouse %q: %w", input.Name, err)
	}
	return w, nil
}

func (s *warehouseService) GetInventory(ctx context.Context) ([]WarehouseInventory, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, component_id, warehouse_id, current_qty, incoming_qty, outgoing_qty, last_updated
		FROM warehouse_inventory
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory records: %w", err)
	}
	defer rows.Close()

	var records []WarehouseInventory
	for rows.Next() {
		var rec WarehouseInventory
		var current, incoming, outgoing int
		if err := rows.Scan(&rec.ID, &rec.ComponentID, &rec.WarehouseID,
			&current, &incoming, &outgoing, &rec.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan inventory record: %w", err)
		}
		rec.CurrentQty = Qty(current)
		rec.IncomingQty = Qty(incoming)
		rec.OutgoingQty = Qty(outgoing)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *warehouseService) AdjustInventory(ctx context.Context, input AdjustInventoryInput) (*WarehouseInventory, error) {
	if input.ComponentID == 0 || input.WarehouseID == 0 {
		return nil, errors.New("component_id and warehouse_id are required")
	}

	rec := &WarehouseInventory{}
	var current, incoming, outgoing int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO warehouse_inventory (component_id, warehouse_id, current_qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (component_id, warehouse_id)
		DO UPDATE SET current_qty = warehouse_inventory.current_qty + EXCLUDED.current_qty,
		              last_updated = NOW()
		RETURNING id, component_id, warehouse_id, current_qty, incoming_qty, outgoing_qty, last_updated`,
		input.ComponentID, input.WarehouseID, input.Delta.Value,
	).Scan(&rec.ID, &rec.ComponentID, &rec.WarehouseID, &current, &incoming, &outgoing, &rec.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust inventory for component %d in warehouse %d: %w",
			input.ComponentID, input.WarehouseID, err)
	}
	rec.CurrentQty = Qty(current)
	rec.IncomingQty = Qty(incoming)
	rec.OutgoingQty = Qty(outgoing)
	return rec, nil
}
