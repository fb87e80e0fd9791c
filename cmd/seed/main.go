// seed is a one-shot tool to load demo catalog, warehouse, and order data.
// Run it against a freshly migrated database to get a populated console.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"

	"supplychain-console/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Seeding suppliers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO suppliers (name, contact_person, email, phone)
		VALUES
		    ('Acme Components',   'Dana Wright',  'dana@acmecomponents.example',  '+1-555-0101'),
		    ('Pacific Fasteners', 'Jun Nakamura', 'jun@pacificfasteners.example', '+81-3-5550-0202'),
		    ('Nordic Polymers',   'Elin Berg',    'elin@nordicpolymers.example',  '+46-8-555-0303')
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to seed suppliers: %v", err)
	}

	log.Println("Seeding components...")
	_, err = tx.Exec(ctx, `
		INSERT INTO components (num, description, category, supplier_id, supplier_part_number, unit_cost)
		SELECT v.num, v.description, v.category, s.id, v.supplier_part_number, v.unit_cost
		FROM (VALUES
		    ('CMP-001', 'Alpha drive housing',      'Enclosure', 'Acme Components',   'AC-7710', 14.25),
		    ('CMP-002', 'Beta control board',       'Electronics', 'Acme Components', 'AC-8821', 87.90),
		    ('CMP-003', 'M4 hex bolt, stainless',   'Fastener',  'Pacific Fasteners', 'PF-0440', 0.12),
		    ('CMP-004', 'Gasket ring, nitrile',     'Seal',      'Nordic Polymers',   'NP-2205', 1.05),
		    ('CMP-005', 'Gamma sensor module',      'Electronics', 'Acme Components', 'AC-9130', 142.00)
		) AS v(num, description, category, supplier_name, supplier_part_number, unit_cost)
		JOIN suppliers s ON s.name = v.supplier_name
		ON CONFLICT (num) DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to seed components: %v", err)
	}

	log.Println("Seeding warehouses...")
	_, err = tx.Exec(ctx, `
		INSERT INTO warehouses (name, location, capacity)
		VALUES
		    ('WH-A Central', 'Rotterdam',  50000),
		    ('WH-B Overflow', 'Antwerp',   20000)
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to seed warehouses: %v", err)
	}

	log.Println("Seeding stock records...")
	_, err = tx.Exec(ctx, `
		INSERT INTO warehouse_inventory (component_id, warehouse_id, current_qty, incoming_qty)
		SELECT c.id, w.id, v.current_qty, v.incoming_qty
		FROM (VALUES
		    ('CMP-001', 'WH-A Central',   6,   50),
		    ('CMP-002', 'WH-A Central',  42,    0),
		    ('CMP-003', 'WH-A Central', 980,  500),
		    ('CMP-004', 'WH-B Overflow',  0,  200),
		    ('CMP-005', 'WH-B Overflow',  -3,   10)
		) AS v(num, warehouse_name, current_qty, incoming_qty)
		JOIN components c ON c.num = v.num
		JOIN warehouses w ON w.name = v.warehouse_name
		ON CONFLICT (component_id, warehouse_id) DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to seed stock records: %v", err)
	}

	log.Println("Seeding purchase orders...")
	_, err = tx.Exec(ctx, `
		INSERT INTO purchase_orders (order_number, supplier_id, status, total, order_date)
		SELECT v.order_number, s.id, v.status, v.total, v.order_date::date
		FROM (VALUES
		    ('PO-2026-001', 'Acme Components',   'APPROVED', 4820.00, '2026-08-02'),
		    ('PO-2026-002', 'Pacific Fasteners', 'APPROVED',  660.00, '2026-08-10'),
		    ('PO-2026-003', 'Nordic Polymers',   'DRAFT',  210.00, '2026-08-21')
		) AS v(order_number, supplier_name, status, total, order_date)
		JOIN suppliers s ON s.name = v.supplier_name
		ON CONFLICT (order_number) DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to seed purchase orders: %v", err)
	}

	log.Println("Seeding shipments...")
	_, err = tx.Exec(ctx, `
		INSERT INTO shipments (direction, component_id, qty, purchase_order_id, warehouse_id,
		                       origin, destination, carrier, tracking_number, status)
		SELECT v.direction, c.id, v.qty, po.id, w.id,
		       v.origin, v.destination, v.carrier, v.tracking_number, v.status
		FROM (VALUES
		    ('INBOUND', 'CMP-001',  50, 'PO-2026-001', 'WH-A Central',
		     'Shenzhen', 'Rotterdam', 'Maersk', 'MSK-118804', 'IN_TRANSIT'),
		    ('INBOUND', 'CMP-003', 500, 'PO-2026-002', 'WH-A Central',
		     'Osaka', 'Rotterdam', 'ONE', 'ONE-220417', 'PENDING'),
		    ('OUTBOUND', 'CMP-002', 12, NULL, 'WH-A Central',
		     'Rotterdam', 'Lyon', 'DHL', 'DHL-990122', 'PENDING')
		) AS v(direction, num, qty, order_number, warehouse_name,
		       origin, destination, carrier, tracking_number, status)
		JOIN components c ON c.num = v.num
		JOIN warehouses w ON w.name = v.warehouse_name
		LEFT JOIN purchase_orders po ON po.order_number = v.order_number
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to seed shipments: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}
	log.Println("Seed complete.")
}
