package contract

import (
	"context"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/specification"
)

type CitationRepository interface {
	CreateBulk(ctx context.Context, citations []*entity.CitationRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CitationRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
