package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is one embedded slice of a document. DocumentName,
// PageNumber and SectionHeading are denormalized onto the chunk so a
// similarity hit is citation-ready without joins.
type DocumentChunk struct {
	Id             uuid.UUID
	DocumentId     uuid.UUID
	SessionId      uuid.UUID
	DocumentName   string
	Content        string
	Embedding      []float32
	ChunkIndex     int
	PageNumber     int
	SectionHeading string
	CreatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
