package mapper

import (
	"time"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DocumentChunkMapper struct{}

func NewDocumentChunkMapper() *DocumentChunkMapper {
	return &DocumentChunkMapper{}
}

func (m *DocumentChunkMapper) ToEntity(e *model.DocumentChunk) *entity.DocumentChunk {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.DocumentChunk{
		Id:             e.Id,
		DocumentId:     e.DocumentId,
		SessionId:      e.SessionId,
		DocumentName:   e.DocumentName,
		Content:        e.Content,
		Embedding:      e.Embedding.Slice(),
		ChunkIndex:     e.ChunkIndex,
		PageNumber:     e.PageNumber,
		SectionHeading: e.SectionHeading,
		CreatedAt:      e.CreatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *DocumentChunkMapper) ToModel(e *entity.DocumentChunk) *model.DocumentChunk {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.DocumentChunk{
		Id:             e.Id,
		DocumentId:     e.DocumentId,
		SessionId:      e.SessionId,
		DocumentName:   e.DocumentName,
		Content:        e.Content,
		Embedding:      pgvector.NewVector(e.Embedding),
		ChunkIndex:     e.ChunkIndex,
		PageNumber:     e.PageNumber,
		SectionHeading: e.SectionHeading,
		CreatedAt:      e.CreatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *DocumentChunkMapper) ToEntities(chunks []*model.DocumentChunk) []*entity.DocumentChunk {
	entities := make([]*entity.DocumentChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *DocumentChunkMapper) ToModels(chunks []*entity.DocumentChunk) []*model.DocumentChunk {
	models := make([]*model.DocumentChunk, len(chunks))
	for i, c := range chunks {
		models[i] = m.ToModel(c)
	}
	return models
}
