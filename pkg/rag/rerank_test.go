package rag

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type stubScorer struct {
	scores    []float64
	err       error
	calls     int
	lastQuery string
}

func (s *stubScorer) Score(ctx context.Context, query string, candidates []string) ([]float64, error) {
	s.calls++
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func candidateSet(distances ...float64) []Candidate {
	out := make([]Candidate, len(distances))
	for i, d := range distances {
		out[i] = Candidate{
			ID:       string(rune('a' + i)),
			Text:     "passage",
			Distance: d,
			Metadata: CandidateMetadata{DocumentID: "doc-1"},
		}
	}
	return out
}

func TestRerankEmptyInputSkipsModel(t *testing.T) {
	scorer := &stubScorer{}

	got := rerank(context.Background(), scorer, zap.NewNop(), "q", nil, 3, 0.4)

	if len(got) != 0 {
		t.Errorf("rerank() returned %d candidates, want 0", len(got))
	}
	if scorer.calls != 0 {
		t.Errorf("scorer called %d times for empty input, want 0", scorer.calls)
	}
}

func TestRerankSortsFiltersAndTruncates(t *testing.T) {
	scorer := &stubScorer{scores: []float64{0.9, 0.3, 0.1}}

	got := rerank(context.Background(), scorer, zap.NewNop(), "q", candidateSet(0.3, 0.6, 1.9), 3, 0.4)

	if len(got) != 1 {
		t.Fatalf("rerank() returned %d candidates, want 1", len(got))
	}
	if got[0].RelevanceScore != 0.9 {
		t.Errorf("surviving score = %v, want 0.9", got[0].RelevanceScore)
	}
}

func TestRerankTruncatesBeforeThreshold(t *testing.T) {
	// Four candidates all above threshold: the fourth-best must not appear
	// even though its score clears 0.4.
	scorer := &stubScorer{scores: []float64{0.5, 0.95, 0.6, 0.7}}

	got := rerank(context.Background(), scorer, zap.NewNop(), "q", candidateSet(0.1, 0.2, 0.3, 0.4), 3, 0.4)

	if len(got) != 3 {
		t.Fatalf("rerank() returned %d candidates, want 3", len(got))
	}
	wantScores := []float64{0.95, 0.7, 0.6}
	for i, rc := range got {
		if rc.RelevanceScore != wantScores[i] {
			t.Errorf("position %d score = %v, want %v", i, rc.RelevanceScore, wantScores[i])
		}
	}
}

func TestRerankOrderPreservedAfterFiltering(t *testing.T) {
	scorer := &stubScorer{scores: []float64{0.2, 0.8, 0.5}}

	got := rerank(context.Background(), scorer, zap.NewNop(), "q", candidateSet(0.1, 0.2, 0.3), 3, 0.4)

	for i := 1; i < len(got); i++ {
		if got[i].RelevanceScore > got[i-1].RelevanceScore {
			t.Errorf("output not descending at position %d: %v > %v", i, got[i].RelevanceScore, got[i-1].RelevanceScore)
		}
	}
}

func TestRerankDistanceFallbackOnScorerError(t *testing.T) {
	scorer := &stubScorer{err: errors.New("model unavailable")}

	// distances 0.2 and 1.0 map to fallback scores 0.9 and 0.5
	got := rerank(context.Background(), scorer, zap.NewNop(), "q", candidateSet(1.0, 0.2), 3, 0.4)

	if len(got) != 2 {
		t.Fatalf("rerank() returned %d candidates, want 2", len(got))
	}
	if got[0].RelevanceScore != 0.9 || got[1].RelevanceScore != 0.5 {
		t.Errorf("fallback scores = [%v %v], want [0.9 0.5]", got[0].RelevanceScore, got[1].RelevanceScore)
	}
}

func TestRerankNilScorerUsesFallback(t *testing.T) {
	got := rerank(context.Background(), nil, zap.NewNop(), "q", candidateSet(0.2), 3, 0.4)

	if len(got) != 1 {
		t.Fatalf("rerank() returned %d candidates, want 1", len(got))
	}
	if got[0].RelevanceScore != 0.9 {
		t.Errorf("fallback score = %v, want 0.9", got[0].RelevanceScore)
	}
}

func TestDistanceFallbackClampsAtZero(t *testing.T) {
	scores := distanceFallbackScores(candidateSet(3.0))
	if scores[0] != 0 {
		t.Errorf("fallback score for distance 3.0 = %v, want 0", scores[0])
	}
}
