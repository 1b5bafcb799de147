package entity

import (
	"time"

	"github.com/google/uuid"
)

// CitationRecord is an append-only row in a session's citation history.
// Never mutated after creation.
type CitationRecord struct {
	Id                   uuid.UUID
	SessionId            uuid.UUID
	WindowIndex          int
	Rank                 int
	DocumentId           uuid.UUID
	DocumentName         string
	PageNumber           int
	SectionHeading       string
	Snippet              string
	RelevanceScore       float64
	TranscriptFragmentId string
	CreatedAt            time.Time
}
