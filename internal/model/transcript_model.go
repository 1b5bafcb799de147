package model

import (
	"time"

	"github.com/google/uuid"
)

type TranscriptSegment struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId  uuid.UUID `gorm:"type:uuid;not null;index"`
	FragmentId string    `gorm:"type:varchar(64)"`
	Text       string    `gorm:"type:text"`
	StartTime  float64   `gorm:"default:0"`
	EndTime    float64   `gorm:"default:0"`
	Confidence float64   `gorm:"default:0"`
	IsFinal    bool      `gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (TranscriptSegment) TableName() string {
	return "transcript_segments"
}
