package contract

import (
	"context"

	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.LectureNote) error
	Update(ctx context.Context, note *entity.LectureNote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LectureNote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LectureNote, error)
}
