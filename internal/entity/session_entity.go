package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session lifecycle states.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

type Session struct {
	Id              uuid.UUID
	Title           string
	FolderId        *uuid.UUID
	UserId          uuid.UUID
	Status          string
	SourceLanguage  string
	TargetLanguage  string
	DurationSeconds int
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}
