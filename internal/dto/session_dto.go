package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Title          string     `json:"title" validate:"required,max=255"`
	FolderId       *uuid.UUID `json:"folder_id"`
	SourceLanguage string     `json:"source_language" validate:"omitempty,max=16"`
	TargetLanguage string     `json:"target_language" validate:"omitempty,max=16"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateSessionRequest struct {
	Id       uuid.UUID
	Title    string     `json:"title" validate:"required,max=255"`
	FolderId *uuid.UUID `json:"folder_id"`
}

type CompleteSessionRequest struct {
	Id              uuid.UUID
	DurationSeconds int `json:"duration_seconds" validate:"gte=0"`
}

type SessionResponse struct {
	Id              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	FolderId        *uuid.UUID `json:"folder_id"`
	Status          string     `json:"status"`
	SourceLanguage  string     `json:"source_language"`
	TargetLanguage  string     `json:"target_language"`
	DurationSeconds int        `json:"duration_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}
