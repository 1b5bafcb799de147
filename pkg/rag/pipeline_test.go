package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lecture-lens-be/pkg/embedding"
)

type stubEmbedder struct {
	err   error
	calls int
}

func (e *stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type passthroughEnricher struct{}

func (passthroughEnricher) Enrich(text string) Enrichment {
	return Enrichment{Keywords: []string{"kw"}, EnrichedQuery: text + " kw"}
}

type stubIndex struct {
	candidates []Candidate
	err        error
	lastFilter map[string]string
	lastTopK   int
}

func (i *stubIndex) Query(ctx context.Context, namespace string, vector []float32, topK int, filter map[string]string) ([]Candidate, error) {
	i.lastFilter = filter
	i.lastTopK = topK
	if i.err != nil {
		return nil, i.err
	}
	return i.candidates, nil
}

type stubStore struct {
	err   error
	calls int
	last  []Citation
}

func (s *stubStore) Append(ctx context.Context, sessionID string, windowIndex int, citations []Citation) error {
	s.calls++
	s.last = citations
	return s.err
}

func newTestPipeline(index *stubIndex, scorer *stubScorer, store *stubStore) *Pipeline {
	return NewPipeline(DefaultConfig(), &stubEmbedder{}, passthroughEnricher{}, index, scorer, store, zap.NewNop())
}

func TestQueryEndToEnd(t *testing.T) {
	index := &stubIndex{candidates: candidateSet(0.3, 0.6, 1.9)}
	scorer := &stubScorer{scores: []float64{0.9, 0.3, 0.1}}
	store := &stubStore{}
	p := newTestPipeline(index, scorer, store)

	res, err := p.Query(context.Background(), QueryRequest{
		SessionID:      "session-1",
		TranscriptText: "the lecturer explains entropy in detail",
		WindowIndex:    2,
	})
	require.NoError(t, err)

	require.Len(t, res.Citations, 1)
	assert.Equal(t, 1, res.Citations[0].Rank)
	assert.Equal(t, 0.9, res.Citations[0].RelevanceScore)
	assert.Equal(t, 2, res.WindowIndex)
	assert.Equal(t, []string{"kw"}, res.Metadata.Keywords)

	assert.Equal(t, map[string]string{"session_id": "session-1"}, index.lastFilter)
	assert.Equal(t, 5, index.lastTopK)
	assert.Equal(t, 1, store.calls)
}

func TestQueryRerankerReceivesRawTranscriptText(t *testing.T) {
	index := &stubIndex{candidates: candidateSet(0.3)}
	scorer := &stubScorer{scores: []float64{0.9}}
	p := newTestPipeline(index, scorer, &stubStore{})

	_, err := p.Query(context.Background(), QueryRequest{
		SessionID:      "s",
		TranscriptText: "the lecturer explains entropy",
	})
	require.NoError(t, err)

	// Keyword enrichment only shapes the embedding query. The cross-encoder
	// compares candidates against the window text as spoken.
	require.Equal(t, 1, scorer.calls)
	assert.Equal(t, "the lecturer explains entropy", scorer.lastQuery)
}

func TestQueryEarlyExitSkipsReranker(t *testing.T) {
	index := &stubIndex{candidates: candidateSet(1.6, 2.1, 1.9)}
	scorer := &stubScorer{scores: []float64{0.9, 0.9, 0.9}}
	p := newTestPipeline(index, scorer, &stubStore{})

	res, err := p.Query(context.Background(), QueryRequest{
		SessionID:      "s",
		TranscriptText: "some transcript text",
	})
	require.NoError(t, err)

	assert.Empty(t, res.Citations)
	assert.Equal(t, 0, scorer.calls, "reranker must not run past the gate")
	// Enrichment metadata is still reported on early exit.
	assert.Equal(t, []string{"kw"}, res.Metadata.Keywords)
}

func TestQueryEmptyCandidatesExit(t *testing.T) {
	scorer := &stubScorer{}
	p := newTestPipeline(&stubIndex{}, scorer, &stubStore{})

	res, err := p.Query(context.Background(), QueryRequest{SessionID: "s", TranscriptText: "anything at all"})
	require.NoError(t, err)

	assert.Empty(t, res.Citations)
	assert.Equal(t, 0, scorer.calls)
}

func TestQueryEmptyInputShortCircuits(t *testing.T) {
	embedder := &stubEmbedder{}
	scorer := &stubScorer{}
	p := NewPipeline(DefaultConfig(), embedder, passthroughEnricher{}, &stubIndex{}, scorer, &stubStore{}, zap.NewNop())

	for _, text := range []string{"", "   ", "\n\t"} {
		res, err := p.Query(context.Background(), QueryRequest{SessionID: "s", TranscriptText: text})
		require.NoError(t, err)
		assert.Empty(t, res.Citations)
	}
	assert.Equal(t, 0, embedder.calls, "no model invoked for empty input")
	assert.Equal(t, 0, scorer.calls)
}

func TestQueryEmbeddingFailureIsSurfaced(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("provider down")}
	p := NewPipeline(DefaultConfig(), embedder, passthroughEnricher{}, &stubIndex{}, &stubScorer{}, &stubStore{}, zap.NewNop())

	_, err := p.Query(context.Background(), QueryRequest{SessionID: "s", TranscriptText: "real transcript text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed query")
}

func TestQueryVectorIndexFailureIsSurfaced(t *testing.T) {
	index := &stubIndex{err: errors.New("connection refused")}
	p := newTestPipeline(index, &stubScorer{}, &stubStore{})

	_, err := p.Query(context.Background(), QueryRequest{SessionID: "s", TranscriptText: "real transcript text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vector index query")
}

func TestQueryPersistenceFailureDoesNotAffectResponse(t *testing.T) {
	index := &stubIndex{candidates: candidateSet(0.2)}
	scorer := &stubScorer{scores: []float64{0.8}}
	store := &stubStore{err: errors.New("db down")}
	p := newTestPipeline(index, scorer, store)

	res, err := p.Query(context.Background(), QueryRequest{SessionID: "s", TranscriptText: "real transcript text"})
	require.NoError(t, err)

	require.Len(t, res.Citations, 1)
	assert.Equal(t, 1, store.calls)
}

func TestQueryRanksAreDenseAndBounded(t *testing.T) {
	index := &stubIndex{candidates: candidateSet(0.1, 0.2, 0.3, 0.4, 0.5)}
	scorer := &stubScorer{scores: []float64{0.9, 0.8, 0.7, 0.6, 0.5}}
	p := newTestPipeline(index, scorer, &stubStore{})

	res, err := p.Query(context.Background(), QueryRequest{SessionID: "s", TranscriptText: "real transcript text"})
	require.NoError(t, err)

	require.LessOrEqual(t, len(res.Citations), DefaultConfig().TopKResults)
	for i, c := range res.Citations {
		assert.Equal(t, i+1, c.Rank)
		assert.GreaterOrEqual(t, c.RelevanceScore, DefaultConfig().RelevanceThreshold)
	}
}
