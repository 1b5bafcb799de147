package dto

// Websocket message types exchanged on the transcript stream.
const (
	StreamTypeSegment      = "segment"
	StreamTypeSegmentSaved = "segment_saved"
	StreamTypeCitations    = "citations"
	StreamTypePing         = "ping"
	StreamTypePong         = "pong"
	StreamTypeError        = "error"
)

// StreamInboundMessage is what the client sends. Only Type is always
// present; segment fields apply when Type is "segment".
type StreamInboundMessage struct {
	Type       string  `json:"type"`
	FragmentId string  `json:"fragment_id"`
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"`
	IsFinal    bool    `json:"is_final"`
}

type SegmentSavedMessage struct {
	Type       string `json:"type"`
	FragmentId string `json:"fragment_id"`
}

type CitationsMessage struct {
	Type             string             `json:"type"`
	WindowIndex      int                `json:"window_index"`
	Citations        []CitationResponse `json:"citations"`
	Keywords         []string           `json:"keywords"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

type StreamErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type TranscriptSegmentResponse struct {
	FragmentId string  `json:"fragment_id"`
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"`
	IsFinal    bool    `json:"is_final"`
}
