package handlers

import (
	"context"
	"net/http"
	"time"
)

// Health reports whether the process is up and the store answers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("UNAVAILABLE"))
		return
	}
	_, _ = w.Write([]byte("OK"))
}
