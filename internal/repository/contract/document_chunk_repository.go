package contract

import (
	"context"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredChunk wraps DocumentChunk with its cosine distance to the query
// vector. Distance is 0.0 for identical vectors, 2.0 for opposite ones.
type ScoredChunk struct {
	Chunk    *entity.DocumentChunk
	Distance float64
}

type DocumentChunkRepository interface {
	Create(ctx context.Context, chunk *entity.DocumentChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchNearest returns the limit chunks of a session closest to the
	// query embedding, ordered by cosine distance ascending.
	SearchNearest(ctx context.Context, embedding []float32, limit int, sessionId uuid.UUID) ([]*ScoredChunk, error)
}
