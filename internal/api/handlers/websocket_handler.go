package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/nutrilens/nutrilens-be/internal/services"
	ws "github.com/nutrilens/nutrilens-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler upgrades HTTP connections and routes client frames.
type WebSocketHandler struct {
	hub     *ws.Hub
	chatSvc services.ChatServiceProvider
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(hub *ws.Hub, chatSvc services.ChatServiceProvider) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, chatSvc: chatSvc}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins (consider tightening this in production).
		return true
	},
}

// Serve handles the WebSocket connection request. Clients pick their
// topics with ?topics=blogs,chat; the default is blogs only.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	topics := []string{ws.TopicBlogs}
	if raw := r.URL.Query().Get("topics"); raw != "" {
		topics = strings.Split(raw, ",")
	}

	client := ws.NewClient(h.hub, conn, topics)
	h.hub.Register <- client

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		client.WritePump()
	}()
	go func() {
		defer wg.Done()
		client.ReadPump(h.handleIncomingMessage)
	}()

	// Cleanup on disconnect.
	go func() {
		wg.Wait()
		h.hub.Unregister <- client
	}()
}

// handleIncomingMessage processes frames received from a client.
func (h *WebSocketHandler) handleIncomingMessage(client *ws.Client, message []byte) {
	var msg ws.Message
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Error().Err(err).Bytes("message", message).Msg("Error decoding websocket message")
		return
	}

	switch msg.Action {
	case "chat_message":
		payload, ok := msg.Payload.(map[string]interface{})
		if !ok {
			client.Queue(ws.NewErrorMessage("Invalid payload for chat message"))
			return
		}
		text, _ := payload["message"].(string)
		reply, err := h.chatSvc.Reply(context.Background(), text)
		if err != nil {
			client.Queue(ws.NewErrorMessage(err.Error()))
			return
		}
		client.Queue(ws.NewChatReplyMessage(reply))

	default:
		log.Warn().Str("action", msg.Action).Msg("Unknown websocket action received")
		client.Queue(ws.NewErrorMessage("Unknown action: " + msg.Action))
	}
}
