package enrich

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"lecture-lens-be/pkg/embedding"
)

// hashEmbedder produces deterministic vectors from token content so tests
// do not depend on a live provider.
type hashEmbedder struct {
	err   error
	calls int
}

func (e *hashEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: hashVector(text)},
	}, nil
}

func hashVector(text string) []float32 {
	vec := make([]float32, 8)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := 0
		for _, r := range tok {
			h = h*31 + int(r)
		}
		if h < 0 {
			h = -h
		}
		vec[h%8]++
	}
	return vec
}

func TestEnrichShortTextPassthrough(t *testing.T) {
	e := NewExtractor(&hashEmbedder{}, zap.NewNop())

	got := e.Enrich("short")

	if len(got.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty", got.Keywords)
	}
	if got.EnrichedQuery != "short" {
		t.Errorf("EnrichedQuery = %q, want unchanged input", got.EnrichedQuery)
	}
}

func TestEnrichDegradesOnEmbeddingFailure(t *testing.T) {
	e := NewExtractor(&hashEmbedder{err: errors.New("provider down")}, zap.NewNop())
	text := "thermodynamics describes energy transfer between systems"

	got := e.Enrich(text)

	if len(got.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty on failure", got.Keywords)
	}
	if got.EnrichedQuery != text {
		t.Errorf("EnrichedQuery = %q, want unchanged input", got.EnrichedQuery)
	}
}

func TestEnrichAppendsKeywordsOnce(t *testing.T) {
	e := NewExtractor(&hashEmbedder{}, zap.NewNop())
	text := "thermodynamics describes energy transfer between physical systems over time"

	got := e.Enrich(text)

	if len(got.Keywords) == 0 {
		t.Fatal("expected keywords for a long technical sentence")
	}
	want := text + " " + strings.Join(got.Keywords, " ")
	if got.EnrichedQuery != want {
		t.Errorf("EnrichedQuery = %q, want %q", got.EnrichedQuery, want)
	}
}

func TestEnrichKeywordCount(t *testing.T) {
	e := NewExtractor(&hashEmbedder{}, zap.NewNop())
	text := "quantum mechanics wave functions probability amplitudes measurement collapse entanglement superposition decoherence observables"

	got := e.Enrich(text)

	if len(got.Keywords) > DefaultTopN {
		t.Errorf("got %d keywords, want at most %d", len(got.Keywords), DefaultTopN)
	}
}

func TestCandidatePhrases(t *testing.T) {
	phrases := candidatePhrases("the quick brown fox jumps over the lazy dog", 20)

	for _, p := range phrases {
		for _, tok := range strings.Fields(p) {
			if isStopWord(tok) {
				t.Errorf("candidate %q contains stop word %q", p, tok)
			}
		}
		n := len(strings.Fields(p))
		if n < 1 || n > 2 {
			t.Errorf("candidate %q has %d tokens, want 1 or 2", p, n)
		}
	}
}

func TestCandidatePhrasesPoolCap(t *testing.T) {
	// Long text with many distinct tokens must still respect the pool cap.
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString("token")
		sb.WriteByte(byte('a' + i%26))
		sb.WriteString("word ")
	}

	phrases := candidatePhrases(sb.String(), DefaultPoolSize)

	if len(phrases) > DefaultPoolSize {
		t.Errorf("pool size = %d, want at most %d", len(phrases), DefaultPoolSize)
	}
}

func TestCandidatePhrasesEmptyForStopWordsOnly(t *testing.T) {
	phrases := candidatePhrases("the and of to in is was", 20)
	if len(phrases) != 0 {
		t.Errorf("phrases = %v, want none for stop-word-only input", phrases)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal vectors", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length mismatch", []float32{1}, []float32{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}
