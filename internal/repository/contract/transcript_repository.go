package contract

import (
	"context"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/specification"
)

type TranscriptRepository interface {
	Create(ctx context.Context, segment *entity.TranscriptSegment) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TranscriptSegment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
