package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LectureNote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text"`
	Model     string    `gorm:"type:varchar(128)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LectureNote) TableName() string {
	return "lecture_notes"
}
