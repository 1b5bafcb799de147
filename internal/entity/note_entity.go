package entity

import (
	"time"

	"github.com/google/uuid"
)

// LectureNote is the markdown summary generated from a session's
// transcript and citation history.
type LectureNote struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Content   string
	Model     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
