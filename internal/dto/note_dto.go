package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateNoteResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Status    string    `json:"status"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId uuid.UUID `json:"session_id"`
	Content   string    `json:"content"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

type NoteStatusResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Status    string    `json:"status"`
}
