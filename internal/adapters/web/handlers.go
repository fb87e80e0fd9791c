package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"supplychain-console/internal/app"
	"supplychain-console/internal/core"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Health (public) ───────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── JSON API: 1 MB body limit to prevent unbounded request abuse ─────────
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		// ── Catalog ───────────────────────────────────────────────────────────
		r.Get("/api/components", h.listComponents)
		r.Post("/api/components", h.createComponent)
		r.Get("/api/components/{id}", h.getComponent)
		r.Put("/api/components/{id}", h.updateComponent)
		r.Delete("/api/components/{id}", h.deactivateComponent)
		r.Get("/api/suppliers", h.listSuppliers)
		r.Post("/api/suppliers", h.createSupplier)

		// ── Warehouses & stock records ────────────────────────────────────────
		r.Get("/api/warehouses", h.listWarehouses)
		r.Post("/api/warehouses", h.createWarehouse)
		r.Get("/api/inventory", h.listInventory)
		r.Post("/api/inventory/adjust", h.adjustInventory)

		// ── Aggregated views (format=csv / format=report on the overview) ─────
		r.Get("/api/inventory/overview", h.inventoryOverview)
		r.Get("/api/inventory/summary", h.inventorySummary)
		r.Get("/api/shipments/overview", h.shipmentOverview)

		// ── Shipments ─────────────────────────────────────────────────────────
		r.Get("/api/shipments", h.listShipments)
		r.Post("/api/shipments", h.createShipment)
		r.Post("/api/shipments/{id}/status", h.updateShipmentStatus)

		// ── Purchasing / finance ──────────────────────────────────────────────
		r.Get("/api/purchase-orders", h.listPurchaseOrders)
		r.Post("/api/purchase-orders", h.createPurchaseOrder)
		r.Get("/api/finance/supplier-spend", h.supplierSpend)

		// ── Assistant ─────────────────────────────────────────────────────────
		r.Post("/api/assistant/search", h.assistantSearch)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// idParam extracts the numeric {id} URL parameter.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, r, "invalid id", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// queryParams reads the overview query controls from the URL. The sort
// keys and status filters are enumerable in the UI, so an unknown value
// here is a programming error in the caller and maps to 400.
func queryParams(r *http.Request) core.QueryParams {
	q := r.URL.Query()
	return core.QueryParams{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		SortKey:   core.SortKey(q.Get("sort")),
		Direction: core.SortDirection(q.Get("dir")),
	}
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body
// exceeds the size limit set by RequestBodyLimit middleware; HTTP 400 for
// all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
