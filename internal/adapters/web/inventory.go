package web

import (
	"errors"
	"fmt"
	"net/http"

	"supplychain-console/internal/core"
)

// inventoryOverview serves the joined, filtered, sorted inventory views.
// format=csv and format=report switch the same data into the export
// renderings; everything else returns JSON.
func (h *Handler) inventoryOverview(w http.ResponseWriter, r *http.Request) {
	params := queryParams(r)
	// The status values are enumerable in the UI controls; an unknown one
	// is a caller bug and must fail fast, not silently filter everything.
	if !core.ValidStatusFilter(params.Status) {
		writeError(w, r, fmt.Sprintf("invalid status filter %q", params.Status), "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		csv, err := h.svc.ExportInventoryCSV(r.Context(), params)
		if err != nil {
			writeOverviewError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
		_, _ = w.Write([]byte(csv))
		return
	case "report":
		report, err := h.svc.RenderInventoryReport(r.Context(), params)
		if err != nil {
			writeOverviewError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(report))
		return
	}

	result, err := h.svc.GetInventoryOverview(r.Context(), params)
	if err != nil {
		writeOverviewError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) inventorySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetInventorySummary(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// writeOverviewError maps a bad sort key to 400; anything else is a data
// source failure.
func writeOverviewError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrUnknownSortKey) {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
}
