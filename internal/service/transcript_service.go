package service

import (
	"context"
	"fmt"
	"time"

	"lecture-lens-be/internal/dto"
	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/specification"
	"lecture-lens-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITranscriptService interface {
	SaveSegment(ctx context.Context, sessionId uuid.UUID, msg *dto.StreamInboundMessage) error
	ListBySession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.TranscriptSegmentResponse, error)
}

type transcriptService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTranscriptService(uowFactory unitofwork.RepositoryFactory) ITranscriptService {
	return &transcriptService{
		uowFactory: uowFactory,
	}
}

func (c *transcriptService) SaveSegment(ctx context.Context, sessionId uuid.UUID, msg *dto.StreamInboundMessage) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	segment := entity.TranscriptSegment{
		Id:         uuid.New(),
		SessionId:  sessionId,
		FragmentId: msg.FragmentId,
		Text:       msg.Text,
		StartTime:  msg.StartTime,
		EndTime:    msg.EndTime,
		Confidence: msg.Confidence,
		IsFinal:    msg.IsFinal,
		CreatedAt:  time.Now(),
	}
	return uow.TranscriptRepository().Create(ctx, &segment)
}

func (c *transcriptService) ListBySession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.TranscriptSegmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found")
	}

	segments, err := uow.TranscriptRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TranscriptSegmentResponse, len(segments))
	for i, s := range segments {
		res[i] = &dto.TranscriptSegmentResponse{
			FragmentId: s.FragmentId,
			Text:       s.Text,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Confidence: s.Confidence,
			IsFinal:    s.IsFinal,
		}
	}
	return res, nil
}
