package service

import (
	"context"
	"log"

	"lecture-lens-be/internal/dto"
	"lecture-lens-be/pkg/rag"
	"lecture-lens-be/pkg/rag/buffer"

	"github.com/google/uuid"
)

type IStreamService interface {
	NewProcessor(sessionId uuid.UUID) (*StreamProcessor, error)
}

type streamService struct {
	pipeline          *rag.Pipeline
	transcriptService ITranscriptService
	bufferPolicy      string
}

func NewStreamService(
	pipeline *rag.Pipeline,
	transcriptService ITranscriptService,
	bufferPolicy string,
) IStreamService {
	return &streamService{
		pipeline:          pipeline,
		transcriptService: transcriptService,
		bufferPolicy:      bufferPolicy,
	}
}

func (s *streamService) NewProcessor(sessionId uuid.UUID) (*StreamProcessor, error) {
	buf, err := buffer.New(s.bufferPolicy)
	if err != nil {
		return nil, err
	}
	return &StreamProcessor{
		sessionId:         sessionId,
		buf:               buf,
		pipeline:          s.pipeline,
		transcriptService: s.transcriptService,
	}, nil
}

// StreamProcessor handles one websocket connection's transcript segments.
// Not safe for concurrent use, each connection owns exactly one processor
// and feeds it from its single read loop.
type StreamProcessor struct {
	sessionId         uuid.UUID
	buf               buffer.Policy
	pipeline          *rag.Pipeline
	transcriptService ITranscriptService
}

// HandleSegment persists a final segment, feeds it to the window buffer,
// and runs retrieval when the buffer reports a window ready. It returns
// nil when no window completed on this segment.
//
// The buffer always advances after a query attempt, even a failed one, so
// a transient retrieval error never stalls the stream on a stuck window.
func (p *StreamProcessor) HandleSegment(ctx context.Context, msg *dto.StreamInboundMessage) (*rag.QueryResult, error) {
	if !msg.IsFinal {
		return nil, nil
	}

	if err := p.transcriptService.SaveSegment(ctx, p.sessionId, msg); err != nil {
		// Persistence is best-effort, retrieval still runs on the live text
		log.Printf("[WARN] Failed to save transcript segment %s: %v", msg.FragmentId, err)
	}

	p.buf.Add(rag.Fragment{
		ID:         msg.FragmentId,
		Text:       msg.Text,
		StartTime:  msg.StartTime,
		EndTime:    msg.EndTime,
		Confidence: msg.Confidence,
		IsFinal:    msg.IsFinal,
	})

	if !p.buf.IsReady() {
		return nil, nil
	}

	text := p.buf.Text()
	windowIndex := p.buf.WindowIndex()

	result, err := p.pipeline.Query(ctx, rag.QueryRequest{
		SessionID:            p.sessionId.String(),
		TranscriptText:       text,
		WindowIndex:          windowIndex,
		TranscriptFragmentID: msg.FragmentId,
	})
	p.buf.Advance()

	if err != nil {
		return nil, err
	}
	return result, nil
}
