package mapper

import (
	"encoding/json"
	"time"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(e *model.Document) *entity.Document {
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

	var metadata map[string]interface{}
	if len(e.Metadata) > 0 {
		// Best effort, malformed metadata is dropped rather than failing reads
		_ = json.Unmarshal(e.Metadata, &metadata)
	}

	return &entity.Document{
		Id:        e.Id,
		SessionId: e.SessionId,
		Name:      e.Name,
		Content:   e.Content,
		PageCount: e.PageCount,
		Status:    e.Status,
		Metadata:  metadata,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: e.DeletedAt.Valid,
	}
}

func (m *DocumentMapper) ToModel(e *entity.Document) *model.Document {
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

	var metadata datatypes.JSON
	if e.Metadata != nil {
		metaJSON, _ := json.Marshal(e.Metadata)
		metadata = datatypes.JSON(metaJSON)
	}

	return &model.Document{
		Id:        e.Id,
		SessionId: e.SessionId,
		Name:      e.Name,
		Content:   e.Content,
		PageCount: e.PageCount,
		Status:    e.Status,
		Metadata:  metadata,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}
