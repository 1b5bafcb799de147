package service

import (
	"context"
	"time"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/unitofwork"
	"lecture-lens-be/pkg/rag"

	"github.com/google/uuid"
)

// citationWriter persists assembled citations as append-only history rows.
type citationWriter struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCitationWriter(uowFactory unitofwork.RepositoryFactory) rag.CitationStore {
	return &citationWriter{
		uowFactory: uowFactory,
	}
}

func (w *citationWriter) Append(ctx context.Context, sessionID string, windowIndex int, citations []rag.Citation) error {
	if len(citations) == 0 {
		return nil
	}

	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return err
	}

	records := make([]*entity.CitationRecord, 0, len(citations))
	for _, c := range citations {
		docId, err := uuid.Parse(c.DocumentID)
		if err != nil {
			// Citation assembly already drops candidates without a
			// document id, anything left unparsable is skipped too.
			continue
		}
		records = append(records, &entity.CitationRecord{
			Id:                   uuid.New(),
			SessionId:            sid,
			WindowIndex:          windowIndex,
			Rank:                 c.Rank,
			DocumentId:           docId,
			DocumentName:         c.DocumentName,
			PageNumber:           c.PageNumber,
			SectionHeading:       c.SectionHeading,
			Snippet:              c.Snippet,
			RelevanceScore:       c.RelevanceScore,
			TranscriptFragmentId: c.TranscriptFragmentID,
			CreatedAt:            time.Now(),
		})
	}

	uow := w.uowFactory.NewUnitOfWork(ctx)
	return uow.CitationRepository().CreateBulk(ctx, records)
}
