package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/services"
)

// ChatHandler handles the food-advice assistant endpoint.
type ChatHandler struct {
	service services.ChatServiceProvider
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service services.ChatServiceProvider) *ChatHandler {
	return &ChatHandler{service: service}
}

// ChatPayload defines the structure for chat requests.
type ChatPayload struct {
	Message string `json:"message"`
}

// Ask handles POST /chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var payload ChatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	reply, err := h.service.Reply(r.Context(), payload.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
