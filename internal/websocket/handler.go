package websocket

import (
	"lecture-lens-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs handles a transcript stream connection for one session.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID uuid.UUID, processor *service.StreamProcessor) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		SessionID: sessionID,
		Processor: processor,
		Send:      make(chan []byte, 256),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
