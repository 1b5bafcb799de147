package rag

// shouldExit reports whether the candidate set is too distant to be worth
// reranking. An empty set always exits. This is a compute-avoidance
// optimization on raw vector distance, independent of the reranker's own
// relevance threshold.
func shouldExit(candidates []Candidate, distanceThreshold float64) bool {
	if len(candidates) == 0 {
		return true
	}

	minDistance := candidates[0].Distance
	for _, c := range candidates[1:] {
		if c.Distance < minDistance {
			minDistance = c.Distance
		}
	}

	return minDistance > distanceThreshold
}
