package mapper

import (
	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/model"
)

type CitationMapper struct{}

func NewCitationMapper() *CitationMapper {
	return &CitationMapper{}
}

func (m *CitationMapper) ToEntity(e *model.CitationRecord) *entity.CitationRecord {
	if e == nil {
		return nil
	}
	return &entity.CitationRecord{
		Id:                   e.Id,
		SessionId:            e.SessionId,
		WindowIndex:          e.WindowIndex,
		Rank:                 e.Rank,
		DocumentId:           e.DocumentId,
		DocumentName:         e.DocumentName,
		PageNumber:           e.PageNumber,
		SectionHeading:       e.SectionHeading,
		Snippet:              e.Snippet,
		RelevanceScore:       e.RelevanceScore,
		TranscriptFragmentId: e.TranscriptFragmentId,
		CreatedAt:            e.CreatedAt,
	}
}

func (m *CitationMapper) ToModel(e *entity.CitationRecord) *model.CitationRecord {
	if e == nil {
		return nil
	}
	return &model.CitationRecord{
		Id:                   e.Id,
		SessionId:            e.SessionId,
		WindowIndex:          e.WindowIndex,
		Rank:                 e.Rank,
		DocumentId:           e.DocumentId,
		DocumentName:         e.DocumentName,
		PageNumber:           e.PageNumber,
		SectionHeading:       e.SectionHeading,
		Snippet:              e.Snippet,
		RelevanceScore:       e.RelevanceScore,
		TranscriptFragmentId: e.TranscriptFragmentId,
		CreatedAt:            e.CreatedAt,
	}
}

func (m *CitationMapper) ToModels(citations []*entity.CitationRecord) []*model.CitationRecord {
	models := make([]*model.CitationRecord, len(citations))
	for i, c := range citations {
		models[i] = m.ToModel(c)
	}
	return models
}
