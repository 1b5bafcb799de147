package reranker

import (
	"context"
)

// Scorer assigns a relevance score to each candidate text for a query.
// Scores are returned in candidate order. Implementations return an error
// when the model cannot be reached; callers decide on a fallback.
type Scorer interface {
	Score(ctx context.Context, query string, candidates []string) ([]float64, error)
}
