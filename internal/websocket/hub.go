package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"lecture-lens-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Hub struct {
	// Registered clients map: SessionID -> List of Clients (multi-tab)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// dropSlowClients queues clients whose Send buffer overflowed for
// unregistration. Only the Run loop closes a client's Send channel, so a
// client hit by concurrent sends is never closed twice.
func (h *Hub) dropSlowClients(stale []*Client) {
	for _, client := range stale {
		h.unregister <- client
	}
}

// Broadcast sends a payload to ALL connected clients.
func (h *Hub) Broadcast(payload interface{}) {
	data, _ := json.Marshal(payload)

	var stale []*Client
	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stale = append(stale, client)
			}
		}
	}
	h.mu.RUnlock()
	h.dropSlowClients(stale)

	// Publish to Redis for other instances. "*" targets everyone.
	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_session_id": "*",
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Send delivers a payload to every client watching a session.
// Implements the service layer's EventDelivery interface.
func (h *Hub) Send(sessionID uuid.UUID, payload interface{}) {
	data, _ := json.Marshal(payload)

	// Sends happen under the read lock so Run cannot close a Send
	// channel mid-loop.
	var stale []*Client
	h.mu.RLock()
	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"session_id": sessionID})
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()
	h.dropSlowClients(stale)

	// Always publish so other instances holding this session's tabs see it
	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_session_id": sessionID.String(),
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to "cluster_events". Each message carries
	// a target session id; instances deliver to sessions they hold
	// locally and ignore the rest.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var envelope struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if envelope.TargetSessionID == "*" {
			var stale []*Client
			h.mu.RLock()
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- envelope.Message:
					default:
						stale = append(stale, client)
					}
				}
			}
			h.mu.RUnlock()
			h.dropSlowClients(stale)
			continue
		}

		sid, err := uuid.Parse(envelope.TargetSessionID)
		if err != nil {
			continue
		}

		var stale []*Client
		h.mu.RLock()
		for _, client := range h.clients[sid] {
			select {
			case client.Send <- envelope.Message:
			default:
				stale = append(stale, client)
			}
		}
		h.mu.RUnlock()
		h.dropSlowClients(stale)
	}
}
