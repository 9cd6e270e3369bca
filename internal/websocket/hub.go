package websocket

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Topics clients can subscribe to.
const (
	TopicBlogs = "blogs"
	TopicChat  = "chat"
)

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	// Inbound messages for global broadcast.
	Broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// mu guards clients and subscriptions. Run owns the lifecycle
	// channels, but BroadcastTo is called from handler and scheduler
	// goroutines, so every map access takes the lock.
	mu sync.Mutex

	// Registered clients.
	clients map[*Client]bool

	// A map of topic names to the set of clients subscribed to each.
	subscriptions map[string]map[*Client]bool
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Broadcast:     make(chan []byte),
		Register:      make(chan *Client),
		Unregister:    make(chan *Client),
		clients:       make(map[*Client]bool),
		subscriptions: make(map[string]map[*Client]bool),
	}
}

// Run starts the Hub's message processing loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			for _, topic := range client.Topics {
				h.addSubscription(client, topic)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Info().Int("total_clients", total).Msg("Client connected")
		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				log.Info().Int("total_clients", len(h.clients)).Msg("Client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if !client.Queue(message) {
					h.drop(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastTo sends a message to all clients subscribed to a topic. Safe to
// call from any goroutine.
func (h *Hub) BroadcastTo(topic string, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.subscriptions[topic] {
		if !client.Queue(message) {
			h.drop(client)
		}
	}
}

// drop disconnects a client. Callers must hold h.mu.
func (h *Hub) drop(client *Client) {
	client.closeSend()
	delete(h.clients, client)
	h.removeSubscription(client)
}

func (h *Hub) addSubscription(client *Client, topic string) {
	if h.subscriptions[topic] == nil {
		h.subscriptions[topic] = make(map[*Client]bool)
	}
	h.subscriptions[topic][client] = true
}

func (h *Hub) removeSubscription(client *Client) {
	for topic, subs := range h.subscriptions {
		if _, ok := subs[client]; ok {
			delete(subs, client)
			if len(subs) == 0 {
				delete(h.subscriptions, topic)
			}
		}
	}
}
