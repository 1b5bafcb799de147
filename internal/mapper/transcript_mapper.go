package mapper

import (
	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/model"
)

type TranscriptMapper struct{}

func NewTranscriptMapper() *TranscriptMapper {
	return &TranscriptMapper{}
}

func (m *TranscriptMapper) ToEntity(e *model.TranscriptSegment) *entity.TranscriptSegment {
	if e == nil {
		return nil
	}
	return &entity.TranscriptSegment{
		Id:         e.Id,
		SessionId:  e.SessionId,
		FragmentId: e.FragmentId,
		Text:       e.Text,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Confidence: e.Confidence,
		IsFinal:    e.IsFinal,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *TranscriptMapper) ToModel(e *entity.TranscriptSegment) *model.TranscriptSegment {
	if e == nil {
		return nil
	}
	return &model.TranscriptSegment{
		Id:         e.Id,
		SessionId:  e.SessionId,
		FragmentId: e.FragmentId,
		Text:       e.Text,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Confidence: e.Confidence,
		IsFinal:    e.IsFinal,
		CreatedAt:  e.CreatedAt,
	}
}
