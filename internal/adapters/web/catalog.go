package web

import (
	"net/http"

	"supplychain-console/internal/core"
)

// ── Components ────────────────────────────────────────────────────────────────

func (h *Handler) listComponents(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListComponents(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) getComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	result, err := h.svc.GetComponent(r.Context(), id)
	if err != nil {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) createComponent(w http.ResponseWriter, r *http.Request) {
	var req core.ComponentInput
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.CreateComponent(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) updateComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req core.ComponentInput
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.UpdateComponent(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) deactivateComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeactivateComponent(r.Context(), id); err != nil {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]string{"status": "deactivated"})
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var req core.SupplierInput
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.CreateSupplier(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}
