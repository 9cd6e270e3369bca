package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/models"
	"github.com/nutrilens/nutrilens-be/internal/services"
	ws "github.com/nutrilens/nutrilens-be/internal/websocket"
)

// BlogHandler handles the blog content endpoints.
type BlogHandler struct {
	service services.BlogServiceProvider
	hub     *ws.Hub
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service services.BlogServiceProvider, hub *ws.Hub) *BlogHandler {
	return &BlogHandler{service: service, hub: hub}
}

// GetAll handles GET /blogs.
func (h *BlogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.GetAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	writeData(w, http.StatusOK, blogs)
}

// Generate handles POST /blogs/generate and notifies subscribers.
func (h *BlogHandler) Generate(w http.ResponseWriter, r *http.Request) {
	blog, err := h.service.Generate()
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.BroadcastTo(ws.TopicBlogs, ws.NewBlogPublishedMessage(blog))
	writeData(w, http.StatusCreated, map[string]any{"blog": blog})
}

// Like handles POST /blogs/{id}/like.
func (h *BlogHandler) Like(w http.ResponseWriter, r *http.Request) {
	likes, err := h.service.Like(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int{"likes": likes})
}

// CommentPayload defines the structure for comment requests.
type CommentPayload struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Comment handles POST /blogs/{id}/comment.
func (h *BlogHandler) Comment(w http.ResponseWriter, r *http.Request) {
	var payload CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	comment, err := h.service.Comment(chi.URLParam(r, "id"), payload.Author, payload.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, map[string]any{"comment": comment})
}
