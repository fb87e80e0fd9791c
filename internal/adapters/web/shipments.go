package web

import (
	"fmt"
	"net/http"

	"supplychain-console/internal/core"
)

func (h *Handler) shipmentOverview(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	if !core.ValidShipmentStatusFilter(params.Status) {
		writeError(w, r, fmt.Sprintf("invalid status filter %q", params.Status), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.GetShipmentOverview(r.Context(), params)
	if err != nil {
		writeOverviewError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListShipments(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	var req core.ShipmentInput
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.CreateShipment(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) updateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req struct {
		Status core.ShipmentStatus `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.UpdateShipmentStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}
