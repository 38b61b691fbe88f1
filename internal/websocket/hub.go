// internal/websocket/hub.go
package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evently-service/internal/domain/registration"
)

// Message is the envelope pushed to connected clients.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	TypeRegistrationUpdated = "registration:updated"
	TypeSessionRevoked      = "session:revoked"
)

// Hub tracks connected clients per account and fans out notices. Pushes are
// advisory: the server-side token gate remains the enforcement point.
type Hub struct {
	clients map[uuid.UUID]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run processes client lifecycle events until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

// Register attaches an authenticated client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.accountID] == nil {
		h.clients[client.accountID] = make(map[*Client]bool)
	}
	h.clients[client.accountID][client] = true

	h.logger.Debug("websocket client connected",
		zap.String("account_id", client.accountID.String()),
	)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[client.accountID]; ok {
		if conns[client] {
			delete(conns, client)
			close(client.send)
		}
		if len(conns) == 0 {
			delete(h.clients, client.accountID)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, conns := range h.clients {
		for client := range conns {
			close(client.send)
		}
	}
	h.clients = make(map[uuid.UUID]map[*Client]bool)
}

// sendTo delivers a message to every connection of one account. Slow
// consumers are dropped rather than blocking the hub.
func (h *Hub) sendTo(accountID uuid.UUID, msg *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[accountID] {
		select {
		case client.send <- msg:
		default:
			h.logger.Warn("dropping slow websocket client",
				zap.String("account_id", accountID.String()),
			)
		}
	}
}

// NotifyRegistrationUpdated pushes a registration status change to the
// affected account.
func (h *Hub) NotifyRegistrationUpdated(accountID uuid.UUID, reg *registration.Registration) {
	h.sendTo(accountID, &Message{
		Type:      TypeRegistrationUpdated,
		Data:      reg,
		Timestamp: time.Now(),
	})
}

// NotifySessionRevoked tells an account's clients that their session state
// should be cleared (deactivation or removal).
func (h *Hub) NotifySessionRevoked(accountID uuid.UUID, reason string) {
	h.sendTo(accountID, &Message{
		Type:      TypeSessionRevoked,
		Data:      map[string]string{"reason": reason},
		Timestamp: time.Now(),
	})
}
