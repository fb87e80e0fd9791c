package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "supplychain-console/internal/adapters/web"
	"supplychain-console/internal/ai"
	"supplychain-console/internal/app"
	"supplychain-console/internal/core"
	"supplychain-console/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	catalog := core.NewCatalogService(pool)
	warehouses := core.NewWarehouseService(pool)
	shipments := core.NewShipmentService(pool)
	purchasing := core.NewPurchasingService(pool)
	snapshots := core.NewSnapshotService(catalog, warehouses, shipments, purchasing)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set; assistant search disabled")
	}
	agent := ai.NewAgent(apiKey)

	svc := app.NewAppService(pool, catalog, warehouses, shipments, purchasing, snapshots, agent)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
