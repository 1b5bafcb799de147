package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func (h *Hub) holdsSession(sessionID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[sessionID]
	return ok
}

func TestHubDropsSlowClientOnce(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	sessionID := uuid.New()
	client := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, 1)}
	hub.register <- client

	require.Eventually(t, func() bool {
		return hub.holdsSession(sessionID)
	}, time.Second, 5*time.Millisecond)

	// Fill the buffer so the next delivery overflows and the client
	// gets queued for unregistration.
	client.Send <- []byte("backlog")
	hub.Send(sessionID, map[string]string{"type": "ping"})

	require.Eventually(t, func() bool {
		return !hub.holdsSession(sessionID)
	}, time.Second, 5*time.Millisecond)

	// The Run loop closed the channel exactly once; further sends to the
	// now-unknown session must not close it again or panic.
	assert.NotPanics(t, func() {
		hub.Send(sessionID, map[string]string{"type": "ping"})
		hub.Broadcast(map[string]string{"type": "ping"})
	})

	_, open := <-client.Send
	assert.True(t, open, "backlog message still readable")
	_, open = <-client.Send
	assert.False(t, open, "channel closed after drop")
}
