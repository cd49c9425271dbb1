// internal/websocket/hub.go
// WebSocket hub manages client connections and message broadcasting

package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"drawbracket/internal/services"
)

// Hub maintains active websocket connections and broadcasts messages
type Hub struct {
	// Registered clients by draw seed
	draws map[string]map[*Client]bool

	// Registered clients by user ID
	users map[string]*Client

	// Register client
	register chan *Client

	// Unregister client
	unregister chan *Client

	// Broadcast messages to draw subscribers
	broadcast chan *Message

	// Services
	services *services.Container
	logger   *log.Logger

	// Mutex for concurrent access
	mu sync.RWMutex
}

// Message represents a WebSocket message
type Message struct {
	Type     string      `json:"type"`
	DrawSeed string      `json:"draw_seed,omitempty"`
	UserID   string      `json:"user_id,omitempty"`
	Data     interface{} `json:"data"`
}

// NewHub creates a new WebSocket hub
func NewHub(services *services.Container, logger *log.Logger) *Hub {
	return &Hub{
		draws:      make(map[string]map[*Client]bool),
		users:      make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		services:   services,
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// registerClient adds a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Register user connection
	if client.userID != "" {
		// Close existing connection for this user
		if existing, exists := h.users[client.userID]; exists {
			existing.close()
			h.removeClient(existing)
		}
		h.users[client.userID] = client
	}

	// Register draw subscriptions
	for _, drawSeed := range client.draws {
		if h.draws[drawSeed] == nil {
			h.draws[drawSeed] = make(map[*Client]bool)
		}
		h.draws[drawSeed][client] = true
	}

	h.logger.Printf("Client registered: %s (draws: %v)", client.userID, client.draws)
}

// unregisterClient removes a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeClient(client)
	client.close()

	h.logger.Printf("Client unregistered: %s", client.userID)
}

// removeClient removes client from all registrations
func (h *Hub) removeClient(client *Client) {
	// Remove from user map
	if client.userID != "" {
		delete(h.users, client.userID)
	}

	// Remove from draw maps
	for _, drawSeed := range client.draws {
		if clients, exists := h.draws[drawSeed]; exists {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.draws, drawSeed)
			}
		}
	}
}

// broadcastMessage sends a message to relevant clients
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Printf("Failed to marshal message: %v", err)
		return
	}

	// Broadcast to draw subscribers
	if message.DrawSeed != "" {
		if clients, exists := h.draws[message.DrawSeed]; exists {
			for client := range clients {
				select {
				case client.send <- data:
				default:
					// Client's send channel is full, close it
					h.removeClient(client)
					client.close()
				}
			}
		}
	}

	// Send to specific user
	if message.UserID != "" {
		if client, exists := h.users[message.UserID]; exists {
			select {
			case client.send <- data:
			default:
				// Client's send channel is full, close it
				h.removeClient(client)
				client.close()
			}
		}
	}
}

// BroadcastDrawUpdate broadcasts an update to all subscribers of a draw seed
func (h *Hub) BroadcastDrawUpdate(drawSeed string, updateType string, data interface{}) {
	message := &Message{
		Type:     updateType,
		DrawSeed: drawSeed,
		Data:     data,
	}
	h.broadcast <- message
}

// SendToUser sends a message to a specific user
func (h *Hub) SendToUser(userID string, messageType string, data interface{}) {
	message := &Message{
		Type:   messageType,
		UserID: userID,
		Data:   data,
	}
	h.broadcast <- message
}

// SubscribeToDraw subscribes a client to updates for a draw seed
func (h *Hub) SubscribeToDraw(client *Client, drawSeed string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.draws = append(client.draws, drawSeed)

	if h.draws[drawSeed] == nil {
		h.draws[drawSeed] = make(map[*Client]bool)
	}
	h.draws[drawSeed][client] = true

	h.logger.Printf("Client %s subscribed to draw %s", client.userID, drawSeed)
}

// UnsubscribeFromDraw unsubscribes a client from updates for a draw seed
func (h *Hub) UnsubscribeFromDraw(client *Client, drawSeed string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, seed := range client.draws {
		if seed == drawSeed {
			client.draws = append(client.draws[:i], client.draws[i+1:]...)
			break
		}
	}

	if clients, exists := h.draws[drawSeed]; exists {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.draws, drawSeed)
		}
	}

	h.logger.Printf("Client %s unsubscribed from draw %s", client.userID, drawSeed)
}
