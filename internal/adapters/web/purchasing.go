package web

import (
	"net/http"

	"supplychain-console/internal/core"
)

func (h *Handler) listPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListPurchaseOrders(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) createPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req core.PurchaseOrderInput
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.CreatePurchaseOrder(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) supplierSpend(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetSupplierSpend(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}
