package rag

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"lecture-lens-be/pkg/reranker"
)

// rerank scores candidates against the query and returns the precision-filtered
// final ordering. When the scorer fails, relevance is approximated from vector
// distance instead; the failure is logged, never surfaced.
//
// Truncation to topK happens BEFORE thresholding, so a candidate sorted below
// position topK never appears in the output even if its raw score clears the
// threshold. Order from the sort step is preserved through filtering.
func rerank(ctx context.Context, scorer reranker.Scorer, log *zap.Logger, query string, candidates []Candidate, topK int, relevanceThreshold float64) []RerankedCandidate {
	if len(candidates) == 0 {
		return []RerankedCandidate{}
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Text
	}

	var scores []float64
	if scorer != nil {
		var err error
		scores, err = scorer.Score(ctx, query, texts)
		if err != nil || len(scores) != len(candidates) {
			log.Warn("reranker scoring failed, falling back to distance-derived scores",
				zap.Error(err),
				zap.Int("candidates", len(candidates)),
			)
			scores = nil
		}
	}
	if scores == nil {
		scores = distanceFallbackScores(candidates)
	}

	reranked := make([]RerankedCandidate, len(candidates))
	for i, c := range candidates {
		reranked[i] = RerankedCandidate{
			Candidate:      c,
			RelevanceScore: scores[i],
		}
	}

	sort.SliceStable(reranked, func(i, j int) bool {
		return reranked[i].RelevanceScore > reranked[j].RelevanceScore
	})

	if topK > 0 && len(reranked) > topK {
		reranked = reranked[:topK]
	}

	filtered := reranked[:0:len(reranked)]
	for _, rc := range reranked {
		if rc.RelevanceScore >= relevanceThreshold {
			filtered = append(filtered, rc)
		}
	}

	return filtered
}

// distanceFallbackScores maps distance to a similarity approximation,
// max(0, 1 - d/2). Good enough to keep citations flowing when the
// cross-encoder is down.
func distanceFallbackScores(candidates []Candidate) []float64 {
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		s := 1 - c.Distance/2
		if s < 0 {
			s = 0
		}
		scores[i] = s
	}
	return scores
}
