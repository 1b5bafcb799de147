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

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) error
	Complete(ctx context.Context, userId uuid.UUID, req *dto.CompleteSessionRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, folderId *uuid.UUID) ([]*dto.SessionResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
	}
}

func (c *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if req.FolderId != nil {
		folder, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.FolderId},
			specification.OwnedByUser{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, fmt.Errorf("folder not found")
		}
	}

	session := entity.Session{
		Id:             uuid.New(),
		Title:          req.Title,
		FolderId:       req.FolderId,
		UserId:         userId,
		Status:         entity.SessionStatusActive,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		CreatedAt:      time.Now(),
	}

	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (c *sessionService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil // Not found
	}
	return sessionToResponse(session), nil
}

func (c *sessionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found")
	}

	session.Title = req.Title
	session.FolderId = req.FolderId
	now := time.Now()
	session.UpdatedAt = &now
	return uow.SessionRepository().Update(ctx, session)
}

func (c *sessionService) Complete(ctx context.Context, userId uuid.UUID, req *dto.CompleteSessionRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found")
	}

	session.Status = entity.SessionStatusCompleted
	session.DurationSeconds = req.DurationSeconds
	now := time.Now()
	session.UpdatedAt = &now
	return uow.SessionRepository().Update(ctx, session)
}

func (c *sessionService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found")
	}
	return uow.SessionRepository().Delete(ctx, id)
}

func (c *sessionService) List(ctx context.Context, userId uuid.UUID, folderId *uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if folderId != nil {
		specs = append(specs, specification.ByFolderID{FolderID: folderId})
	}

	sessions, err := uow.SessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = sessionToResponse(s)
	}
	return res, nil
}

func sessionToResponse(s *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:              s.Id,
		Title:           s.Title,
		FolderId:        s.FolderId,
		Status:          s.Status,
		SourceLanguage:  s.SourceLanguage,
		TargetLanguage:  s.TargetLanguage,
		DurationSeconds: s.DurationSeconds,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
