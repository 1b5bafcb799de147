package buffer

import (
	"strings"

	"lecture-lens-be/pkg/rag"
)

// PerSegment triggers on every non-empty fragment. No accumulation, no
// overlap retained across windows.
type PerSegment struct {
	current     *rag.Fragment
	windowIndex int
}

func NewPerSegment() *PerSegment {
	return &PerSegment{}
}

func (b *PerSegment) Add(fragment rag.Fragment) {
	b.current = &fragment
}

func (b *PerSegment) IsReady() bool {
	return b.current != nil && strings.TrimSpace(b.current.Text) != ""
}

func (b *PerSegment) Text() string {
	if b.current == nil {
		return ""
	}
	return b.current.Text
}

func (b *PerSegment) Advance() {
	b.current = nil
	b.windowIndex++
}

func (b *PerSegment) WindowIndex() int {
	return b.windowIndex
}
