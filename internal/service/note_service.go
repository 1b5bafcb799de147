package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"lecture-lens-be/internal/dto"
	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/memory"
	"lecture-lens-be/internal/repository/specification"
	"lecture-lens-be/internal/repository/unitofwork"
	"lecture-lens-be/pkg/events"
	"lecture-lens-be/pkg/llm"
	pkgNats "lecture-lens-be/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	Generate(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.GenerateNoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.NoteResponse, error)
	Status(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.NoteStatusResponse, error)
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	statusRepo     *memory.StatusRepository
	eventPublisher *pkgNats.Publisher
	modelName      string
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	statusRepo *memory.StatusRepository,
	eventPublisher *pkgNats.Publisher,
	modelName string,
) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		statusRepo:     statusRepo,
		eventPublisher: eventPublisher,
		modelName:      modelName,
	}
}

func (c *noteService) Generate(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.GenerateNoteResponse, error) {
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

	if status, found := c.statusRepo.Get(sessionId.String()); found && status == memory.StatusGenerating {
		return &dto.GenerateNoteResponse{
			SessionId: sessionId,
			Status:    memory.StatusGenerating,
		}, nil
	}

	c.statusRepo.Set(sessionId.String(), memory.StatusGenerating)

	// Generation runs in the background, the caller polls Status or
	// listens on the event stream for completion.
	go c.generate(context.Background(), sessionId)

	return &dto.GenerateNoteResponse{
		SessionId: sessionId,
		Status:    memory.StatusGenerating,
	}, nil
}

func (c *noteService) generate(ctx context.Context, sessionId uuid.UUID) {
	content, err := c.buildPrompt(ctx, sessionId)
	if err != nil {
		log.Printf("[ERROR] Failed to build note prompt for session %s: %v", sessionId, err)
		c.finish(ctx, sessionId, memory.StatusFailed, err.Error())
		return
	}

	generated, err := c.llmProvider.Generate(ctx, content,
		llm.WithModel(c.modelName),
		llm.WithTemperature(0.3),
	)
	if err != nil {
		log.Printf("[ERROR] Note generation failed for session %s: %v", sessionId, err)
		c.finish(ctx, sessionId, memory.StatusFailed, err.Error())
		return
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.NoteRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		log.Printf("[ERROR] Failed to look up existing note for session %s: %v", sessionId, err)
		c.finish(ctx, sessionId, memory.StatusFailed, err.Error())
		return
	}

	if existing != nil {
		existing.Content = generated
		existing.Model = c.modelName
		now := time.Now()
		existing.UpdatedAt = &now
		err = uow.NoteRepository().Update(ctx, existing)
	} else {
		note := entity.LectureNote{
			Id:        uuid.New(),
			SessionId: sessionId,
			Content:   generated,
			Model:     c.modelName,
			CreatedAt: time.Now(),
		}
		err = uow.NoteRepository().Create(ctx, &note)
	}
	if err != nil {
		log.Printf("[ERROR] Failed to save note for session %s: %v", sessionId, err)
		c.finish(ctx, sessionId, memory.StatusFailed, err.Error())
		return
	}

	c.finish(ctx, sessionId, memory.StatusCompleted, "")
}

func (c *noteService) finish(ctx context.Context, sessionId uuid.UUID, status string, errMsg string) {
	c.statusRepo.Set(sessionId.String(), status)

	if c.eventPublisher == nil {
		return
	}

	eventType := events.TypeNoteGenerated
	data := map[string]interface{}{
		"session_id": sessionId,
	}
	if status == memory.StatusFailed {
		eventType = events.TypeNoteFailed
		data["error"] = errMsg
	}

	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}

func (c *noteService) buildPrompt(ctx context.Context, sessionId uuid.UUID) (string, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	segments, err := uow.TranscriptRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.FilterBy{Field: "is_final", Value: true},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("session has no transcript")
	}

	citations, err := uow.CitationRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "window_index", Desc: false},
	)
	if err != nil {
		return "", err
	}

	var transcript strings.Builder
	for _, s := range segments {
		transcript.WriteString(s.Text)
		transcript.WriteString(" ")
	}

	var references strings.Builder
	for _, cit := range citations {
		fmt.Fprintf(&references, "- [%s, p.%d] %s\n", cit.DocumentName, cit.PageNumber, cit.Snippet)
	}
	if references.Len() == 0 {
		references.WriteString("(no references were matched during this session)\n")
	}

	prompt := fmt.Sprintf(`You are a study assistant. Write structured lecture notes in Markdown from the transcript below.
Use headings, bullet points and short paragraphs. Where the referenced material supports a point, mention the source document and page.

Transcript:
%s

Referenced material:
%s`, strings.TrimSpace(transcript.String()), references.String())

	return prompt, nil
}

func (c *noteService) Show(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.NoteResponse, error) {
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

	note, err := uow.NoteRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil // Not found
	}

	return &dto.NoteResponse{
		Id:        note.Id,
		SessionId: note.SessionId,
		Content:   note.Content,
		Model:     note.Model,
		CreatedAt: note.CreatedAt,
	}, nil
}

func (c *noteService) Status(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.NoteStatusResponse, error) {
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

	status, found := c.statusRepo.Get(sessionId.String())
	if !found {
		note, err := uow.NoteRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
		if err != nil {
			return nil, err
		}
		if note != nil {
			status = memory.StatusCompleted
		} else {
			status = "idle"
		}
	}

	return &dto.NoteStatusResponse{
		SessionId: sessionId,
		Status:    status,
	}, nil
}
