package model

import (
	"time"

	"github.com/google/uuid"
)

type CitationRecord struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId            uuid.UUID `gorm:"type:uuid;not null;index:idx_citations_session_window"`
	WindowIndex          int       `gorm:"not null;index:idx_citations_session_window"`
	Rank                 int       `gorm:"not null"`
	DocumentId           uuid.UUID `gorm:"type:uuid;not null"`
	DocumentName         string    `gorm:"type:varchar(255)"`
	PageNumber           int       `gorm:"default:0"`
	SectionHeading       string    `gorm:"type:varchar(255)"`
	Snippet              string    `gorm:"type:varchar(255)"`
	RelevanceScore       float64   `gorm:"not null"`
	TranscriptFragmentId string    `gorm:"type:varchar(64)"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

func (CitationRecord) TableName() string {
	return "citations"
}
