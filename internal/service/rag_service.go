package service

import (
	"context"
	"fmt"

	"lecture-lens-be/internal/dto"
	"lecture-lens-be/internal/repository/specification"
	"lecture-lens-be/internal/repository/unitofwork"
	"lecture-lens-be/pkg/rag"

	"github.com/google/uuid"
)

type IRagService interface {
	Query(ctx context.Context, userId uuid.UUID, req *dto.RagQueryRequest) (*dto.RagQueryResponse, error)
	ListCitations(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.StoredCitationResponse, error)
}

type ragService struct {
	uowFactory unitofwork.RepositoryFactory
	pipeline   *rag.Pipeline
}

func NewRagService(uowFactory unitofwork.RepositoryFactory, pipeline *rag.Pipeline) IRagService {
	return &ragService{
		uowFactory: uowFactory,
		pipeline:   pipeline,
	}
}

func (c *ragService) Query(ctx context.Context, userId uuid.UUID, req *dto.RagQueryRequest) (*dto.RagQueryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found")
	}

	result, err := c.pipeline.Query(ctx, rag.QueryRequest{
		SessionID:            req.SessionId.String(),
		TranscriptText:       req.Text,
		WindowIndex:          req.WindowIndex,
		TranscriptFragmentID: req.TranscriptFragmentId,
	})
	if err != nil {
		return nil, err
	}

	return queryResultToResponse(result), nil
}

// ListCitations returns a session's full citation history in window order,
// ranks ascending within each window.
func (c *ragService) ListCitations(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.StoredCitationResponse, error) {
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

	records, err := uow.CitationRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "window_index", Desc: false},
		specification.OrderBy{Field: "rank", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StoredCitationResponse, len(records))
	for i, r := range records {
		res[i] = &dto.StoredCitationResponse{
			WindowIndex:          r.WindowIndex,
			Rank:                 r.Rank,
			DocumentId:           r.DocumentId.String(),
			DocumentName:         r.DocumentName,
			PageNumber:           r.PageNumber,
			SectionHeading:       r.SectionHeading,
			Snippet:              r.Snippet,
			RelevanceScore:       r.RelevanceScore,
			TranscriptFragmentId: r.TranscriptFragmentId,
		}
	}
	return res, nil
}

func queryResultToResponse(result *rag.QueryResult) *dto.RagQueryResponse {
	citations := make([]dto.CitationResponse, len(result.Citations))
	for i, c := range result.Citations {
		citations[i] = dto.CitationResponse{
			Rank:           c.Rank,
			DocumentId:     c.DocumentID,
			DocumentName:   c.DocumentName,
			PageNumber:     c.PageNumber,
			SectionHeading: c.SectionHeading,
			Snippet:        c.Snippet,
			RelevanceScore: c.RelevanceScore,
		}
	}
	return &dto.RagQueryResponse{
		Citations:        citations,
		Keywords:         result.Metadata.Keywords,
		ProcessingTimeMs: result.Metadata.ProcessingTimeMs,
	}
}
