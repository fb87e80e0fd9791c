package core_test

import (
	"context"
	"os"
	"testing"

	"supplychain-console/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean and seed test DB
	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE shipments, warehouse_inventory, purchase_orders, components, warehouses, suppliers CASCADE;

		INSERT INTO suppliers (id, name) VALUES (1, 'Acme Components');
		INSERT INTO components (id, num, description, category, supplier_id, unit_cost)
		VALUES (1, 'CMP-001', 'Alpha drive housing', 'Enclosure', 1, 14.25);
		INSERT INTO warehouses (id, name, location, capacity) VALUES (1, 'WH-A', 'Rotterdam', 1000);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return pool
}

func TestShipmentService_InboundLifecycle(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	warehouses := core.NewWarehouseService(pool)
	shipments := core.NewShipmentService(pool)

	warehouseID := 1
	sh, err := shipments.CreateShipment(ctx, core.ShipmentInput{
		Direction:   core.ShipmentInbound,
		ComponentID: 1,
		Qty:         core.Qty(50),
		WarehouseID: &warehouseID,
		Carrier:     "Maersk",
	})
	if err != nil {
		t.Fatalf("CreateShipment: %v", err)
	}
	if sh.Status != core.ShipmentPending {
		t.Fatalf("new shipment status = %s, want PENDING", sh.Status)
	}

	// Creation books the quantity as incoming, not current.
	records, err := warehouses.GetInventory(ctx)
	if err != nil {
		t.Fatalf("GetInventory: %v", err)
	}
	if len(records) != 1 || records[0].IncomingQty.Value != 50 || records[0].CurrentQty.Value != 0 {
		t.Fatalf("after create: records = %+v", records)
	}

	// PENDING cannot jump straight to DELIVERED.
	if _, err := shipments.UpdateStatus(ctx, sh.ID, core.ShipmentDelivered); err == nil {
		t.Fatal("expected invalid transition PENDING → DELIVERED to fail")
	}

	if _, err := shipments.UpdateStatus(ctx, sh.ID, core.ShipmentInTransit); err != nil {
		t.Fatalf("UpdateStatus IN_TRANSIT: %v", err)
	}
	delivered, err := shipments.UpdateStatus(ctx, sh.ID, core.ShipmentDelivered)
	if err != nil {
		t.Fatalf("UpdateStatus DELIVERED: %v", err)
	}
	if delivered.Status != core.ShipmentDelivered {
		t.Fatalf("status = %s, want DELIVERED", delivered.Status)
	}

	// Delivery moves the quantity from incoming to current.
	records, err = warehouses.GetInventory(ctx)
	if err != nil {
		t.Fatalf("GetInventory: %v", err)
	}
	if records[0].CurrentQty.Value != 50 || records[0].IncomingQty.Value != 0 {
		t.Fatalf("after delivery: records = %+v", records)
	}

	// Terminal state: no further transitions.
	if _, err := shipments.UpdateStatus(ctx, sh.ID, core.ShipmentCancelled); err == nil {
		t.Fatal("expected transition out of DELIVERED to fail")
	}
}

func TestWarehouseService_AdjustInventory(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	warehouses := core.NewWarehouseService(pool)

	rec, err := warehouses.AdjustInventory(ctx, core.AdjustInventoryInput{
		ComponentID: 1, WarehouseID: 1, Delta: core.Qty(8),
	})
	if err != nil {
		t.Fatalf("AdjustInventory: %v", err)
	}
	if rec.CurrentQty.Value != 8 {
		t.Fatalf("CurrentQty = %d, want 8", rec.CurrentQty.Value)
	}

	// Adjustments may legitimately drive stock negative.
	rec, err = warehouses.AdjustInventory(ctx, core.AdjustInventoryInput{
		ComponentID: 1, WarehouseID: 1, Delta: core.Qty(-11),
	})
	if err != nil {
		t.Fatalf("AdjustInventory negative: %v", err)
	}
	if rec.CurrentQty.Value != -3 {
		t.Fatalf("CurrentQty = %d, want -3", rec.CurrentQty.Value)
	}
}
