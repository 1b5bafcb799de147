package rag

// Config holds the pipeline tuning knobs. Zero values are not usable,
// construct via DefaultConfig and override from the environment.
type Config struct {
	// Namespace is the logical collection queried in the vector index.
	Namespace string

	// TopKCandidates is how many nearest neighbors to fetch per query.
	TopKCandidates int

	// TopKResults caps the final citation count after reranking.
	TopKResults int

	// RelevanceThreshold is the minimum reranker score a candidate needs
	// to survive into the citation list.
	RelevanceThreshold float64

	// DistanceThreshold is the early-exit cutoff: if the closest candidate
	// is farther than this, reranking is skipped entirely.
	DistanceThreshold float64

	// SnippetLength caps citation snippet size in characters.
	SnippetLength int

	// EmbeddingTaskType is passed through to the embedding provider.
	EmbeddingTaskType string
}

func DefaultConfig() Config {
	return Config{
		Namespace:          "documents",
		TopKCandidates:     5,
		TopKResults:        3,
		RelevanceThreshold: 0.4,
		DistanceThreshold:  1.5,
		SnippetLength:      200,
		EmbeddingTaskType:  "RETRIEVAL_QUERY",
	}
}
