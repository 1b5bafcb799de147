package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Session struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title           string     `gorm:"type:varchar(255);not null"`
	FolderId        *uuid.UUID `gorm:"type:uuid;index"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status          string     `gorm:"type:varchar(32);default:'active'"`
	SourceLanguage  string     `gorm:"type:varchar(16)"`
	TargetLanguage  string     `gorm:"type:varchar(16)"`
	DurationSeconds int        `gorm:"default:0"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Session) TableName() string {
	return "sessions"
}
