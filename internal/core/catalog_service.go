package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ComponentInput carries the editable fields of a component.
type ComponentInput struct {
	Num             string          `json:"num"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	SupplierID      *int            `json:"supplier_id"`
	SupplierPartNum string          `json:"supplier_part_number"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// SupplierInput carries the editable fields of a supplier.
type SupplierInput struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// CatalogService manages the component and supplier master data behind
// the admin forms.
type CatalogService interface {
	GetComponents(ctx context.Context) ([]Component, error)
	GetComponent(ctx context.Context, id int) (*Component, error)
	CreateComponent(ctx context.Context, input ComponentInput) (*Component, error)
	UpdateComponent(ctx context.Context, id int, input ComponentInput) (*Component, error)
	// DeactivateComponent soft-deletes: inventory records referencing the
	// component keep joining against it.
	DeactivateComponent(ctx context.Context, id int) error

	GetSuppliers(ctx context.Context) ([]Supplier, error)
	CreateSupplier(ctx context.Context, input SupplierInput) (*Supplier, error)
}

type catalogService struct {
	pool *pgxpool.Pool
}

// NewCatalogService constructs a CatalogService backed by PostgreSQL.
func NewCatalogService(pool *pgxpool.Pool) CatalogService {
	return &catalogService{pool: pool}
}

const componentColumns = `id, num, description, category, supplier_id, supplier_part_number, unit_cost, is_active, created_at`

func scanComponent(row pgx.Row) (*Component, error) {
	var c Component
	if err := row.Scan(&c.ID, &c.Num, &c.Description, &c.Category,
		&c.SupplierID, &c.SupplierPartNum, &c.UnitCost, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *catalogService) GetComponents(ctx context.Context) ([]Component, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+componentColumns+` FROM components WHERE is_active = true ORDER BY num`)
	if err != nil {
		return nil, fmt.Errorf("failed to query components: %w", err)
	}
	defer rows.Close()

	var components []Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan component: %w", err)
		}
		components = append(components, *c)
	}
	return components, rows.Err()
}

func (s *catalogService) GetComponent(ctx context.Context, id int) (*Component, error) {
	c, err := scanComponent(s.pool.QueryRow(ctx,
		`SELECT `+componentColumns+` FROM components WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("component %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch component %d: %w", id, err)
	}
	return c, nil
}

func (s *catalogService) CreateComponent(ctx context.Context, input ComponentInput) (*Component, error) {
	if input.Num == "" {
		return nil, errors.New("component part number is required")
	}
	c, err := scanComponent(s.pool.QueryRow(ctx, `
		INSERT INTO components (num, description, category, supplier_id, supplier_part_number, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+componentColumns,
		input.Num, input.Description, input.Category, input.SupplierID,
		input.SupplierPartNum, input.UnitCost))
	if err != nil {
		return nil, fmt.Errorf("failed to create component %q: %w", input.Num, err)
	}
	return c, nil
}

func (s *catalogService) UpdateComponent(ctx context.Context, id int, input ComponentInput) (*Component, error) {
	c, err := scanComponent(s.pool.QueryRow(ctx, `
		UPDATE components
		SET num = $2, description = $3, category = $4, supplier_id = $5,
		    supplier_part_number = $6, unit_cost = $7
		WHERE id = $1
		RETURNING `+componentColumns,
		id, input.Num, input.Description, input.Category, input.SupplierID,
		input.SupplierPartNum, input.UnitCost))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("component %d not found", id)
		}
		return nil, fmt.Errorf("failed to update component %d: %w", id, err)
	}
	return c, nil
}

func (s *catalogService) DeactivateComponent(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `UPDATE components SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate component %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("component %d not found", id)
	}
	return nil
}

func (s *catalogService) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, contact_person, email, phone, is_active, created_at
		FROM suppliers
		WHERE is_active = true
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var sp Supplier
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.ContactPerson, &sp.Email,
			&sp.Phone, &sp.IsActive, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sp)
	}
	return suppliers, rows.Err()
}

func (s *catalogService) CreateSupplier(ctx context.Context, input SupplierInput) (*Supplier, error) {
	if input.Name == "" {
		return nil, errors.New("supplier name is required")
	}
	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	sp := &Supplier{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO suppliers (name, contact_person, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, contact_person, email, phone, is_active, created_at`,
		input.Name, toPtr(input.ContactPerson), toPtr(input.Email), toPtr(input.Phone),
	).Scan(&sp.ID, &sp.Name, &sp.ContactPerson, &sp.Email, &sp.Phone, &sp.IsActive, &sp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier %q: %w", input.Name, err)
	}
	return sp, nil
}
