package entity

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptSegment is one persisted speech-recognition fragment.
// FragmentId is the client-side identifier from the recognition stream.
type TranscriptSegment struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	FragmentId string
	Text       string
	StartTime  float64
	EndTime    float64
	Confidence float64
	IsFinal    bool
	CreatedAt  time.Time
}
