package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	"github.com/AnshRaj112/courtmatch-backend/internal/metrics"
	"github.com/AnshRaj112/courtmatch-backend/internal/models"
	"github.com/AnshRaj112/courtmatch-backend/internal/services"
	"github.com/AnshRaj112/courtmatch-backend/pkg/utils"
)

const maxPostBodyBytes = 1 << 20

// CreatePostResponse confirms a new post. The post itself is not echoed back;
// clients re-list the feed to see it.
type CreatePostResponse struct {
	Message string `json:"message"`
}

// ListPosts handles GET /api/posts.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	var posts []models.Post
	err := h.store.WithSession(r.Context(), func(s *database.Session) error {
		var err error
		posts, err = services.ListPosts(r.Context(), s)
		return err
	})
	if err != nil {
		internalError(w, r, "list posts", err)
		return
	}

	resp := make([]models.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, p.Response())
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreatePost handles POST /api/posts.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPostBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Detail: "Request body too large"})
			return
		}
		writeValidationError(w, utils.ValidationErrors{utils.InvalidJSON()})
		return
	}

	content, verrs := decodeCreatePost(body)
	if len(verrs) > 0 {
		writeValidationError(w, verrs)
		return
	}

	err = h.store.WithSession(r.Context(), func(s *database.Session) error {
		_, err := services.CreatePost(r.Context(), s, content)
		return err
	})
	if err != nil {
		internalError(w, r, "create post", err)
		return
	}
	metrics.PostsCreatedTotal.Inc()

	writeJSON(w, http.StatusOK, CreatePostResponse{Message: "Post created"})
}

// decodeCreatePost extracts the content field. It must be present and a JSON
// string; an empty string is allowed.
func decodeCreatePost(body []byte) (string, utils.ValidationErrors) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", utils.ValidationErrors{utils.InvalidJSON()}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", utils.ValidationErrors{utils.MissingField("body", "content")}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", utils.ValidationErrors{utils.NotAnObject("body")}
	}
	value, ok := fields["content"]
	if !ok {
		return "", utils.ValidationErrors{utils.MissingField("body", "content")}
	}

	var content string
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) || json.Unmarshal(value, &content) != nil {
		return "", utils.ValidationErrors{utils.NotAString("body", "content")}
	}
	return content, nil
}
