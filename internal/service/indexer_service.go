package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lecture-lens-be/internal/dto"
	"lecture-lens-be/internal/entity"
	"lecture-lens-be/internal/repository/specification"
	"lecture-lens-be/internal/repository/unitofwork"
	"lecture-lens-be/pkg/embedding"
	"lecture-lens-be/pkg/events"
	pkgNats "lecture-lens-be/pkg/nats"
	"lecture-lens-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IIndexerService interface {
	Consume(ctx context.Context) error
}

type indexerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pkgNats.Publisher
	chunkSize         int
	chunkOverlap      int
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pkgNats.Publisher,
	chunkSize int,
	chunkOverlap int,
) IIndexerService {
	return &indexerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
	}
}

func (cs *indexerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIndexDocumentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Indexing document %s", payload.DocumentId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get document %s: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if document == nil {
		log.Printf("[ERROR] Document not found: %s", payload.DocumentId)
		msg.Ack() // Document deleted? Ack.
		return
	}

	chunks := utils.SplitText(document.Content, cs.chunkSize, cs.chunkOverlap)
	log.Printf("[INFO] Document %s split into %d chunks", payload.DocumentId, len(chunks))

	var newChunks []*entity.DocumentChunk
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of document %s: %v", i, payload.DocumentId, err)
			cs.markFailed(ctx, document)
			msg.Nack()
			return
		}

		newChunks = append(newChunks, &entity.DocumentChunk{
			Id:             uuid.New(),
			DocumentId:     document.Id,
			SessionId:      document.SessionId,
			DocumentName:   document.Name,
			Content:        chunk,
			Embedding:      res.Embedding.Values,
			ChunkIndex:     i,
			PageNumber:     pageForChunk(i, len(chunks), document.PageCount),
			SectionHeading: headingFromMetadata(document.Metadata, i),
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentId(ctx, document.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old chunks: %v", err)
		msg.Nack()
		return
	}

	if len(newChunks) > 0 {
		if err := uow.DocumentChunkRepository().CreateBulk(ctx, newChunks); err != nil {
			log.Printf("[ERROR] Failed to create chunks: %v", err)
			msg.Nack()
			return
		}
	}

	document.Status = entity.DocumentStatusIndexed
	now := time.Now()
	document.UpdatedAt = &now
	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		log.Printf("[ERROR] Failed to update document status: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeDocumentIndexed,
			Data: map[string]interface{}{
				"document_id": document.Id,
				"session_id":  document.SessionId,
				"chunks":      len(newChunks),
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish DOCUMENT_INDEXED event: %v", err)
		}
	}

	log.Printf("[SUCCESS] Document indexed: %d chunks for %s", len(newChunks), payload.DocumentId)
	msg.Ack()
}

func (cs *indexerService) markFailed(ctx context.Context, document *entity.Document) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	document.Status = entity.DocumentStatusFailed
	now := time.Now()
	document.UpdatedAt = &now
	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		log.Printf("[ERROR] Failed to mark document %s as failed: %v", document.Id, err)
	}
}

// pageForChunk maps a chunk position onto the document's page range.
// Extraction upstream flattens the document, so this is a proportional
// estimate rather than an exact page boundary.
func pageForChunk(index, total, pageCount int) int {
	if total <= 0 || pageCount <= 0 {
		return 0
	}
	page := index*pageCount/total + 1
	if page > pageCount {
		page = pageCount
	}
	return page
}

func headingFromMetadata(metadata map[string]interface{}, chunkIndex int) string {
	if metadata == nil {
		return ""
	}
	headings, ok := metadata["section_headings"].([]interface{})
	if !ok || len(headings) == 0 {
		return ""
	}
	idx := chunkIndex
	if idx >= len(headings) {
		idx = len(headings) - 1
	}
	if s, ok := headings[idx].(string); ok {
		return s
	}
	return ""
}
