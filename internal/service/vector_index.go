package service

import (
	"context"
	"fmt"

	"lecture-lens-be/internal/repository/unitofwork"
	"lecture-lens-be/pkg/rag"

	"github.com/google/uuid"
)

// chunkVectorIndex adapts the document chunk repository to the retrieval
// pipeline's index interface. The only namespace backed by storage is
// "documents"; session scoping comes through the filter.
type chunkVectorIndex struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChunkVectorIndex(uowFactory unitofwork.RepositoryFactory) rag.VectorIndex {
	return &chunkVectorIndex{
		uowFactory: uowFactory,
	}
}

func (v *chunkVectorIndex) Query(ctx context.Context, namespace string, vector []float32, topK int, filter map[string]string) ([]rag.Candidate, error) {
	if namespace != "documents" {
		return nil, fmt.Errorf("unknown vector namespace: %s", namespace)
	}

	sessionId, err := uuid.Parse(filter["session_id"])
	if err != nil {
		return nil, fmt.Errorf("invalid session_id filter: %w", err)
	}

	uow := v.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.DocumentChunkRepository().SearchNearest(ctx, vector, topK, sessionId)
	if err != nil {
		return nil, err
	}

	candidates := make([]rag.Candidate, len(scored))
	for i, s := range scored {
		candidates[i] = rag.Candidate{
			ID:   s.Chunk.Id.String(),
			Text: s.Chunk.Content,
			Metadata: rag.CandidateMetadata{
				DocumentID:     s.Chunk.DocumentId.String(),
				DocumentName:   s.Chunk.DocumentName,
				PageNumber:     s.Chunk.PageNumber,
				SectionHeading: s.Chunk.SectionHeading,
			},
			Distance: s.Distance,
		}
	}
	return candidates, nil
}
