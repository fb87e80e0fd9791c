package web

import (
	"net/http"

	"supplychain-console/internal/core"
)

func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListWarehouses(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) createWarehouse(w http.ResponseWriter, r *http.Request) {
	var req core.WarehouseInput
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.CreateWarehouse(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListInventory(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) adjustInventory(w http.ResponseWriter, r *http.Request) {
	var req core.AdjustInventoryInput
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.AdjustInventory(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}
