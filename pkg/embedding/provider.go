package embedding

// EmbeddingProvider defines the interface for generating text embeddings.
//
// taskType hints the provider about the usage ("RETRIEVAL_QUERY" vs
// "RETRIEVAL_DOCUMENT"); providers that have no such concept ignore it.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}

// BatchEmbeddingProvider is implemented by providers that can embed several
// inputs in a single round trip. Callers should type-assert and fall back to
// per-text Generate calls when the provider does not support batching.
type BatchEmbeddingProvider interface {
	EmbeddingProvider
	GenerateBatch(texts []string, taskType string) ([][]float32, error)
}

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}
