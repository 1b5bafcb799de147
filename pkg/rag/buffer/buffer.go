// Package buffer decides when enough transcript text has accumulated to
// issue one retrieval query, and manages overlap between consecutive
// windows. A buffer belongs to exactly one session connection and is not
// safe for concurrent use.
package buffer

import (
	"fmt"

	"lecture-lens-be/pkg/rag"
)

const (
	PolicyWindowed   = "windowed"
	PolicyPerSegment = "per_segment"
)

// Policy is the buffering state machine. Add appends a fragment, IsReady
// reports (without side effects) whether a query should be issued, Text
// returns the accumulated window, and Advance resets for the next window
// while incrementing the window index.
type Policy interface {
	Add(fragment rag.Fragment)
	IsReady() bool
	Text() string
	Advance()
	WindowIndex() int
}

// New constructs the configured buffering policy. Unknown names are an
// error so a typo in configuration fails at startup, not silently.
func New(policy string) (Policy, error) {
	switch policy {
	case PolicyWindowed, "":
		return NewWindowed(), nil
	case PolicyPerSegment:
		return NewPerSegment(), nil
	default:
		return nil, fmt.Errorf("unknown buffer policy: %q", policy)
	}
}
