package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lecture-lens-be/internal/dto"
	"lecture-lens-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024 // transcript segments are text, but can be long
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// SessionID associated with this connection
	SessionID uuid.UUID

	// Processor owns this connection's transcript buffering and retrieval.
	Processor *service.StreamProcessor

	// Buffered channel of outbound messages.
	Send chan []byte
}

// readPump pumps transcript segments from the websocket connection into
// the stream processor and queues responses on the Send channel.
func (c *Client) readPump() {
	defer func() {
		log.Printf("readPump exiting for session %s", c.SessionID)
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	log.Printf("readPump started for session %s", c.SessionID)
	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error for session %s: %v", c.SessionID, err)
			}
			break
		}
		c.handleMessage(raw)
	}
}

func (c *Client) handleMessage(raw []byte) {
	var msg dto.StreamInboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.queue(dto.StreamErrorMessage{
			Type:    dto.StreamTypeError,
			Message: "invalid message format",
		})
		return
	}

	switch msg.Type {
	case dto.StreamTypePing:
		c.queue(map[string]string{"type": dto.StreamTypePong})

	case dto.StreamTypeSegment:
		result, err := c.Processor.HandleSegment(context.Background(), &msg)
		if err != nil {
			log.Printf("[ERROR] Segment processing failed for session %s: %v", c.SessionID, err)
			c.queue(dto.StreamErrorMessage{
				Type:    dto.StreamTypeError,
				Message: "retrieval failed",
			})
			return
		}

		if msg.IsFinal {
			c.queue(dto.SegmentSavedMessage{
				Type:       dto.StreamTypeSegmentSaved,
				FragmentId: msg.FragmentId,
			})
		}

		if result != nil {
			citations := make([]dto.CitationResponse, len(result.Citations))
			for i, cit := range result.Citations {
				citations[i] = dto.CitationResponse{
					Rank:           cit.Rank,
					DocumentId:     cit.DocumentID,
					DocumentName:   cit.DocumentName,
					PageNumber:     cit.PageNumber,
					SectionHeading: cit.SectionHeading,
					Snippet:        cit.Snippet,
					RelevanceScore: cit.RelevanceScore,
				}
			}
			c.queue(dto.CitationsMessage{
				Type:             dto.StreamTypeCitations,
				WindowIndex:      result.WindowIndex,
				Citations:        citations,
				Keywords:         result.Metadata.Keywords,
				ProcessingTimeMs: result.Metadata.ProcessingTimeMs,
			})
		}

	default:
		c.queue(dto.StreamErrorMessage{
			Type:    dto.StreamTypeError,
			Message: "unknown message type: " + msg.Type,
		})
	}
}

func (c *Client) queue(payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
		log.Printf("[WARN] Send buffer full for session %s, dropping message", c.SessionID)
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		log.Printf("writePump exiting for session %s", c.SessionID)
		ticker.Stop()
		c.Conn.Close()
	}()

	log.Printf("writePump started for session %s", c.SessionID)
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush any queued messages into the same frame batch.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("writePump Ping error for session %s: %v", c.SessionID, err)
				return
			}
		}
	}
}
