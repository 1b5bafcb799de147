package rag

import "context"

// Fragment is one transcript piece emitted by the speech-recognition client.
type Fragment struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"`
	IsFinal    bool    `json:"is_final"`
}

// CandidateMetadata carries the citation-relevant fields stored alongside
// each indexed chunk. DocumentID is required for a candidate to be citable.
type CandidateMetadata struct {
	DocumentID     string `json:"document_id"`
	DocumentName   string `json:"document_name"`
	PageNumber     int    `json:"page_number"`
	SectionHeading string `json:"section_heading,omitempty"`
}

// Candidate is one nearest-neighbor hit from the vector index.
// Distance is ascending-is-better (lower = more similar).
type Candidate struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Metadata CandidateMetadata `json:"metadata"`
	Distance float64           `json:"distance"`
}

// RerankedCandidate is a Candidate that survived cross-encoder scoring.
type RerankedCandidate struct {
	Candidate
	RelevanceScore float64 `json:"relevance_score"`
}

// Citation is the final ranked record returned to the client and appended
// to the session's citation history. Immutable after creation.
type Citation struct {
	Rank                 int     `json:"rank"`
	DocumentID           string  `json:"document_id"`
	DocumentName         string  `json:"document_name"`
	PageNumber           int     `json:"page_number"`
	SectionHeading       string  `json:"section_heading,omitempty"`
	Snippet              string  `json:"snippet"`
	RelevanceScore       float64 `json:"relevance_score"`
	WindowIndex          int     `json:"window_index"`
	SessionID            string  `json:"session_id"`
	TranscriptFragmentID string  `json:"transcript_fragment_id,omitempty"`
}

// Enrichment is the output of query enrichment.
type Enrichment struct {
	Keywords      []string `json:"keywords"`
	EnrichedQuery string   `json:"enriched_query"`
}

// QueryMetadata reports enrichment and timing details for one query,
// returned even when the citation list is empty.
type QueryMetadata struct {
	Keywords         []string `json:"keywords"`
	ProcessingTimeMs int64    `json:"processing_time_ms"`
}

// QueryRequest is the input to Pipeline.Query.
type QueryRequest struct {
	SessionID            string
	TranscriptText       string
	WindowIndex          int
	TranscriptFragmentID string
}

// QueryResult is the output of Pipeline.Query.
type QueryResult struct {
	WindowIndex int           `json:"window_index"`
	Citations   []Citation    `json:"citations"`
	Metadata    QueryMetadata `json:"query_metadata"`
}

// QueryEnricher expands a raw transcript window into a retrieval query.
// Implementations must degrade gracefully and never return an error.
type QueryEnricher interface {
	Enrich(text string) Enrichment
}

// VectorIndex is the nearest-neighbor search collaborator. Results are
// ordered ascending by distance. The index side of ingestion (upsert) is
// owned by the indexing service, not this package.
type VectorIndex interface {
	Query(ctx context.Context, namespace string, vector []float32, topK int, filter map[string]string) ([]Candidate, error)
}

// CitationStore persists a citation batch for one window. Writes are
// best-effort from the pipeline's perspective.
type CitationStore interface {
	Append(ctx context.Context, sessionID string, windowIndex int, citations []Citation) error
}
