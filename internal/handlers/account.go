package handlers

import (
	"net/http"

	"github.com/AnshRaj112/courtmatch-backend/internal/services"
)

// GetAccount handles GET /api/account.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.AccountSettings())
}
