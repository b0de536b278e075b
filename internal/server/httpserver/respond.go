package httpserver

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn(r.Context(), "failed to write response", "err", err)
	}
}

// respondError answers with a plain-text body, which the client keeps as
// the error message.
func respondError(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}

// decode reads a JSON request body of at most 1MB into dst.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}
