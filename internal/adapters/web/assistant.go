package web

import (
	"net/http"
	"strings"
)

// assistantSearch turns a natural-language question into validated query
// parameters and returns them together with the matching overview.
func (h *Handler) assistantSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, r, "text is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.InterpretSearch(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err.Error(), "ASSISTANT_ERROR", http.StatusBadGateway)
		return
	}
	writeJSON(w, result)
}
