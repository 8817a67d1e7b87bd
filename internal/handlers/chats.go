package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	"github.com/AnshRaj112/courtmatch-backend/internal/metrics"
	"github.com/AnshRaj112/courtmatch-backend/internal/models"
	"github.com/AnshRaj112/courtmatch-backend/internal/services"
)

// ListChats handles GET /api/chats. An empty store is seeded with the
// placeholder chats first.
func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	var (
		chats  []models.Chat
		seeded bool
	)
	err := h.store.WithSession(r.Context(), func(s *database.Session) error {
		var err error
		if seeded, err = services.EnsureSeedChats(r.Context(), s); err != nil {
			return err
		}
		chats, err = services.ListChats(r.Context(), s)
		return err
	})
	if err != nil {
		internalError(w, r, "list chats", err)
		return
	}
	if seeded {
		metrics.ChatSeedsTotal.Inc()
		zerolog.Ctx(r.Context()).Info().Int("chats", len(services.SeedChats)).Msg("seeded placeholder chats")
	}

	writeJSON(w, http.StatusOK, services.ChatResponses(chats))
}
