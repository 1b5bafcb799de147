package service

import (
	"context"
	"errors"
	"testing"

	"lecture-lens-be/internal/dto"
	"lecture-lens-be/pkg/embedding"
	"lecture-lens-be/pkg/rag"
	"lecture-lens-be/pkg/rag/buffer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscriptService struct {
	saved  []string
	failed bool
}

func (f *fakeTranscriptService) SaveSegment(ctx context.Context, sessionId uuid.UUID, msg *dto.StreamInboundMessage) error {
	if f.failed {
		return errors.New("db down")
	}
	f.saved = append(f.saved, msg.FragmentId)
	return nil
}

func (f *fakeTranscriptService) ListBySession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.TranscriptSegmentResponse, error) {
	return nil, nil
}

type fixedEmbedder struct {
	calls int
}

func (f *fixedEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type fixedIndex struct {
	candidates []rag.Candidate
	queries    int
	err        error
}

func (f *fixedIndex) Query(ctx context.Context, namespace string, vector []float32, topK int, filter map[string]string) ([]rag.Candidate, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

type noopStore struct{}

func (noopStore) Append(ctx context.Context, sessionID string, windowIndex int, citations []rag.Citation) error {
	return nil
}

func newTestPipeline(index rag.VectorIndex) *rag.Pipeline {
	return rag.NewPipeline(rag.DefaultConfig(), &fixedEmbedder{}, nil, index, nil, noopStore{}, nil)
}

func newTestProcessor(t *testing.T, index rag.VectorIndex, ts ITranscriptService) *StreamProcessor {
	t.Helper()
	svc := NewStreamService(newTestPipeline(index), ts, buffer.PolicyPerSegment)
	p, err := svc.NewProcessor(uuid.New())
	require.NoError(t, err)
	return p
}

func TestStreamProcessorIgnoresInterimSegments(t *testing.T) {
	ts := &fakeTranscriptService{}
	index := &fixedIndex{}
	p := newTestProcessor(t, index, ts)

	result, err := p.HandleSegment(context.Background(), &dto.StreamInboundMessage{
		Type:       dto.StreamTypeSegment,
		FragmentId: "frag-1",
		Text:       "partial words still changing",
		IsFinal:    false,
	})

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, ts.saved)
	assert.Equal(t, 0, index.queries)
}

func TestStreamProcessorQueriesOnFinalSegment(t *testing.T) {
	ts := &fakeTranscriptService{}
	index := &fixedIndex{
		candidates: []rag.Candidate{
			{
				ID:   "chunk-1",
				Text: "neural networks are universal approximators",
				Metadata: rag.CandidateMetadata{
					DocumentID:   uuid.NewString(),
					DocumentName: "lecture-slides.pdf",
					PageNumber:   4,
				},
				Distance: 0.3,
			},
		},
	}
	p := newTestProcessor(t, index, ts)

	result, err := p.HandleSegment(context.Background(), &dto.StreamInboundMessage{
		Type:       dto.StreamTypeSegment,
		FragmentId: "frag-1",
		Text:       "today we discuss neural networks",
		IsFinal:    true,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{"frag-1"}, ts.saved)
	assert.Equal(t, 1, index.queries)
	assert.Equal(t, 0, result.WindowIndex)
	require.Len(t, result.Citations, 1)
	assert.Equal(t, "lecture-slides.pdf", result.Citations[0].DocumentName)
}

func TestStreamProcessorWindowIndexAdvances(t *testing.T) {
	ts := &fakeTranscriptService{}
	index := &fixedIndex{}
	p := newTestProcessor(t, index, ts)

	first, err := p.HandleSegment(context.Background(), &dto.StreamInboundMessage{
		Type: dto.StreamTypeSegment, FragmentId: "a", Text: "first chunk of speech", IsFinal: true,
	})
	require.NoError(t, err)
	second, err := p.HandleSegment(context.Background(), &dto.StreamInboundMessage{
		Type: dto.StreamTypeSegment, FragmentId: "b", Text: "second chunk of speech", IsFinal: true,
	})
	require.NoError(t, err)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, 0, first.WindowIndex)
	assert.Equal(t, 1, second.WindowIndex)
}

func TestStreamProcessorAdvancesPastFailedQuery(t *testing.T) {
	ts := &fakeTranscriptService{}
	index := &fixedIndex{err: errors.New("index offline")}
	p := newTestProcessor(t, index, ts)

	_, err := p.HandleSegment(context.Background(), &dto.StreamInboundMessage{
		Type: dto.StreamTypeSegment, FragmentId: "a", Text: "some final text", IsFinal: true,
	})
	require.Error(t, err)

	// The failed window must not wedge the stream. The next segment
	// opens a fresh window with the next index.
	index.err = nil
	result, err := p.HandleSegment(context.Background(), &dto.StreamInboundMessage{
		Type: dto.StreamTypeSegment, FragmentId: "b", Text: "more final text", IsFinal: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.WindowIndex)
}

func TestStreamProcessorToleratesPersistenceFailure(t *testing.T) {
	ts := &fakeTranscriptService{failed: true}
	index := &fixedIndex{}
	p := newTestProcessor(t, index, ts)

	result, err := p.HandleSegment(context.Background(), &dto.StreamInboundMessage{
		Type: dto.StreamTypeSegment, FragmentId: "a", Text: "final text to query", IsFinal: true,
	})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1, index.queries)
}
