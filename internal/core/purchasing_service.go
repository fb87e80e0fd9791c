package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PurchaseOrderInput carries the fields of a new purchase order.
type PurchaseOrderInput struct {
	OrderNumber string          `json:"order_number"`
	SupplierID  *int            `json:"supplier_id"`
	Total       decimal.Decimal `json:"total"`
	OrderDate   string          `json:"order_date"` // YYYY-MM-DD, defaults to today
}

// SupplierSpend is the finance dashboard's per-supplier purchase total.
type SupplierSpend struct {
	SupplierID int             `json:"supplier_id"`
	Name       string          `json:"name"`
	Orders     int             `json:"orders"`
	Total      decimal.Decimal `json:"total"`
}

// PurchasingService manages purchase orders and the finance rollups
// derived from them.
type PurchasingService interface {
	GetPurchaseOrders(ctx context.Context) ([]PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, input PurchaseOrderInput) (*PurchaseOrder, error)

	// GetSupplierSpend aggregates purchase order totals per supplier,
	// highest spend first. Orders with a dangling or absent supplier
	// reference are grouped under the unknown-supplier sentinel so the
	// totals still add up to the grand total.
	GetSupplierSpend(ctx context.Context) ([]SupplierSpend, error)
}

type purchasingService struct {
	pool *pgxpool.Pool
}

// NewPurchasingService constructs a PurchasingService backed by PostgreSQL.
func NewPurchasingService(pool *pgxpool.Pool) PurchasingService {
	return &purchasingService{pool: pool}
}

func (s *purchasingService) GetPurchaseOrders(ctx context.Context) ([]PurchaseOrder, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, order_number, supplier_id, status, total, order_date, created_at
		FROM purchase_orders
		ORDER BY order_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []PurchaseOrder
	for rows.Next() {
		var po PurchaseOrder
		if err := rows.Scan(&po.ID, &po.OrderNumber, &po.SupplierID, &po.Status,
			&po.Total, &po.OrderDate, &po.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

func (s *purchasingService) CreatePurchaseOrder(ctx context.Context, input PurchaseOrderInput) (*PurchaseOrder, error) {
	if input.OrderNumber == "" {
		return nil, errors.New("order number is required")
	}
	if input.Total.IsNegative() {
		return nil, fmt.Errorf("purchase order total cannot be negative, got %s", input.Total)
	}

	orderDate := input.OrderDate
	if orderDate == "" {
		orderDate = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", orderDate); err != nil {
		return nil, fmt.Errorf("invalid order date %q: %w", orderDate, err)
	}

	po := &PurchaseOrder{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO purchase_orders (order_number, supplier_id, status, total, order_date)
		VALUES ($1, $2, 'DRAFT', $3, $4::date)
		RETURNING id, order_number, supplier_id, status, total, order_date, created_at`,
		input.OrderNumber, input.SupplierID, input.Total, orderDate,
	).Scan(&po.ID, &po.OrderNumber, &po.SupplierID, &po.Status, &po.Total, &po.OrderDate, &po.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase order %q: %w", input.OrderNumber, err)
	}
	return po, nil
}

func (s *purchasingService) GetSupplierSpend(ctx context.Context) ([]SupplierSpend, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT COALESCE(sp.id, 0),
		       COALESCE(sp.name, $1),
		       COUNT(po.id),
		       COALESCE(SUM(po.total), 0)
		FROM purchase_orders po
		LEFT JOIN suppliers sp ON sp.id = po.supplier_id
		GROUP BY sp.id, sp.name
		ORDER BY SUM(po.total) DESC, COALESCE(sp.name, $1)`,
		UnknownSupplierName)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier spend: %w", err)
	}
	defer rows.Close()

	var spend []SupplierSpend
	for rows.Next() {
		var sl SupplierSpend
		if err := rows.Scan(&sl.SupplierID, &sl.Name, &sl.Orders, &sl.Total); err != nil {
			return nil, fmt.Errorf("failed to scan supplier spend: %w", err)
		}
		spend = append(spend, sl)
	}
	return spend, rows.Err()
}
