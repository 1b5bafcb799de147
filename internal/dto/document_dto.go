package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	SessionId uuid.UUID
	Name      string                 `json:"name" validate:"required,max=255"`
	Content   string                 `json:"content" validate:"required"`
	PageCount int                    `json:"page_count" validate:"gte=0"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type CreateDocumentResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type DocumentResponse struct {
	Id        uuid.UUID  `json:"id"`
	SessionId uuid.UUID  `json:"session_id"`
	Name      string     `json:"name"`
	PageCount int        `json:"page_count"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
