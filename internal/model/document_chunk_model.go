package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DocumentChunk struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SessionId      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DocumentName   string          `gorm:"type:varchar(255)"`
	Content        string          `gorm:"type:text"`
	Embedding      pgvector.Vector `gorm:"type:vector(768)"` // must match the embedding provider dimension
	ChunkIndex     int             `gorm:"default:0"`
	PageNumber     int             `gorm:"default:0"`
	SectionHeading string          `gorm:"type:varchar(255)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
