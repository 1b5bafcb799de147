package dto

import "github.com/google/uuid"

// PublishIndexDocumentMessage is the payload of an indexing job on the
// internal message bus.
type PublishIndexDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
