package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"supplychain-console/internal/adapters/web"
	"supplychain-console/internal/app"
	"supplychain-console/internal/core"
)

// stubService embeds the interface so only the methods the routes under
// test reach need implementations. Query shaping runs through the real
// query engine so parameter errors surface exactly as in production.
type stubService struct {
	app.ApplicationService
}

func (s *stubService) GetInventoryOverview(ctx context.Context, params core.QueryParams) (*app.InventoryOverviewResult, error) {
	views, err := core.QueryInventory(nil, params)
	if err != nil {
		return nil, err
	}
	return &app.InventoryOverviewResult{Views: views}, nil
}

func (s *stubService) GetShipmentOverview(ctx context.Context, params core.QueryParams) (*app.ShipmentOverviewResult, error) {
	views, err := core.QueryShipments(nil, params)
	if err != nil {
		return nil, err
	}
	return &app.ShipmentOverviewResult{Views: views}, nil
}

func (s *stubService) ExportInventoryCSV(ctx context.Context, params core.QueryParams) (string, error) {
	if _, err := core.QueryInventory(nil, params); err != nil {
		return "", err
	}
	return core.InventoryCSV(nil), nil
}

func TestOverviewEndpoints_ParamValidation(t *testing.T) {
	handler := web.NewHandler(&stubService{}, "")

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{"inventory no params", "/api/inventory/overview", http.StatusOK},
		{"inventory valid status", "/api/inventory/overview?status=LOW_STOCK", http.StatusOK},
		{"inventory All wildcard", "/api/inventory/overview?status=All", http.StatusOK},
		{"inventory unknown status", "/api/inventory/overview?status=BOGUS", http.StatusBadRequest},
		{"inventory lowercase status", "/api/inventory/overview?status=low_stock", http.StatusBadRequest},
		{"inventory shipment status rejected", "/api/inventory/overview?status=PENDING", http.StatusBadRequest},
		{"inventory unknown sort key", "/api/inventory/overview?sort=price", http.StatusBadRequest},
		{"inventory valid sort", "/api/inventory/overview?sort=quantity&dir=asc", http.StatusOK},
		{"shipments valid status", "/api/shipments/overview?status=PENDING", http.StatusOK},
		{"shipments All wildcard", "/api/shipments/overview?status=All", http.StatusOK},
		{"shipments unknown status", "/api/shipments/overview?status=BOGUS", http.StatusBadRequest},
		{"shipments stock status rejected", "/api/shipments/overview?status=LOW_STOCK", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("GET %s = %d, want %d (body %s)", tt.url, rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestInventoryOverview_CSVFormat(t *testing.T) {
	handler := web.NewHandler(&stubService{}, "")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/overview?format=csv", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "inventory.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "Part Number,") {
		t.Errorf("body = %q, want CSV header", rec.Body.String())
	}

	// Bad parameters fail before any bytes are streamed.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/overview?format=csv&status=BOGUS", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("csv with bad status = %d, want 400", rec.Code)
	}
}
