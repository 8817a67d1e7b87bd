package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	"github.com/AnshRaj112/courtmatch-backend/pkg/utils"
)

// Handler serves the JSON API. Every request that touches the store runs in
// its own scoped session.
type Handler struct {
	store *database.Store
}

// New returns a Handler bound to store.
func New(store *database.Store) *Handler {
	return &Handler{store: store}
}

// ErrorResponse is the body of every non-2xx API response. Detail is either a
// message or a list of *utils.ValidationError.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeValidationError(w http.ResponseWriter, errs utils.ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: errs})
}

// internalError logs err against the request and answers with the generic 500.
func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Internal Server Error"})
}

// NotFound answers unknown API paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
}

// MethodNotAllowed answers known API paths called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
}
