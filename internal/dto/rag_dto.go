package dto

import "github.com/google/uuid"

type RagQueryRequest struct {
	SessionId            uuid.UUID
	Text                 string `json:"text" validate:"required"`
	WindowIndex          int    `json:"window_index" validate:"gte=0"`
	TranscriptFragmentId string `json:"transcript_fragment_id"`
}

type CitationResponse struct {
	Rank           int     `json:"rank"`
	DocumentId     string  `json:"document_id"`
	DocumentName   string  `json:"document_name"`
	PageNumber     int     `json:"page_number"`
	SectionHeading string  `json:"section_heading,omitempty"`
	Snippet        string  `json:"snippet"`
	RelevanceScore float64 `json:"relevance_score"`
}

type RagQueryResponse struct {
	Citations        []CitationResponse `json:"citations"`
	Keywords         []string           `json:"keywords"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

type StoredCitationResponse struct {
	WindowIndex          int     `json:"window_index"`
	Rank                 int     `json:"rank"`
	DocumentId           string  `json:"document_id"`
	DocumentName         string  `json:"document_name"`
	PageNumber           int     `json:"page_number"`
	SectionHeading       string  `json:"section_heading,omitempty"`
	Snippet              string  `json:"snippet"`
	RelevanceScore       float64 `json:"relevance_score"`
	TranscriptFragmentId string  `json:"transcript_fragment_id,omitempty"`
}
