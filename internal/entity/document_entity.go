package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document indexing states.
const (
	DocumentStatusPending = "pending"
	DocumentStatusIndexed = "indexed"
	DocumentStatusFailed  = "failed"
)

// Document is an uploaded reference document. Content holds the extracted
// text; extraction itself happens upstream of this service.
type Document struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Name      string
	Content   string
	PageCount int
	Status    string
	Metadata  map[string]interface{}
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
