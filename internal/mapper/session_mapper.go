package mapper

import (
	"time"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/model"

	"gorm.io/gorm"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(e *model.Session) *entity.Session {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Session{
		Id:              e.Id,
		Title:           e.Title,
		FolderId:        e.FolderId,
		UserId:          e.UserId,
		Status:          e.Status,
		SourceLanguage:  e.SourceLanguage,
		TargetLanguage:  e.TargetLanguage,
		DurationSeconds: e.DurationSeconds,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       e.DeletedAt.Valid,
	}
}

func (m *SessionMapper) ToModel(e *entity.Session) *model.Session {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Session{
		Id:              e.Id,
		Title:           e.Title,
		FolderId:        e.FolderId,
		UserId:          e.UserId,
		Status:          e.Status,
		SourceLanguage:  e.SourceLanguage,
		TargetLanguage:  e.TargetLanguage,
		DurationSeconds: e.DurationSeconds,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}
