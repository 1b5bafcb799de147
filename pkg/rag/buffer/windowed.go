package buffer

import (
	"strings"

	"lecture-lens-be/pkg/rag"
)

// Default windowed-policy thresholds, tuned for live lecture speech.
const (
	DefaultMinWords        = 15
	DefaultMaxWords        = 150
	DefaultMinSegments     = 2
	DefaultTargetSentences = 3
)

// Abbreviations whose trailing period does not terminate a sentence.
var abbreviations = map[string]struct{}{
	"dr.": {}, "prof.": {}, "mr.": {}, "mrs.": {}, "ms.": {},
	"jr.": {}, "sr.": {}, "etc.": {}, "e.g.": {}, "i.e.": {},
	"vs.": {}, "fig.": {}, "eq.": {}, "ch.": {}, "vol.": {},
	"no.": {}, "p.": {}, "pp.": {}, "ed.": {}, "eds.": {},
}

// Windowed accumulates fragments until one of three triggers holds:
// the hard word cap, enough sentences plus a word floor, or enough
// fragments plus the word floor (for punctuation-free sources). On
// Advance it keeps the last fragment so consecutive windows overlap.
type Windowed struct {
	MinWords        int
	MaxWords        int
	MinSegments     int
	TargetSentences int

	fragments   []rag.Fragment
	windowIndex int
}

func NewWindowed() *Windowed {
	return &Windowed{
		MinWords:        DefaultMinWords,
		MaxWords:        DefaultMaxWords,
		MinSegments:     DefaultMinSegments,
		TargetSentences: DefaultTargetSentences,
	}
}

func (b *Windowed) Add(fragment rag.Fragment) {
	b.fragments = append(b.fragments, fragment)
}

func (b *Windowed) IsReady() bool {
	if len(b.fragments) == 0 {
		return false
	}

	text := b.Text()
	wordCount := len(strings.Fields(text))

	// Hard cap forces a trigger regardless of sentence structure.
	if wordCount >= b.MaxWords {
		return true
	}
	if wordCount < b.MinWords {
		return false
	}
	if countSentences(text) >= b.TargetSentences {
		return true
	}
	// Fallback for sources that never emit punctuation.
	return len(b.fragments) >= b.MinSegments
}

func (b *Windowed) Text() string {
	parts := make([]string, 0, len(b.fragments))
	for _, f := range b.fragments {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}

// Advance keeps only the last fragment as overlap context for the next
// window. Advancing an empty buffer leaves it empty; the window index
// increments either way.
func (b *Windowed) Advance() {
	if len(b.fragments) > 0 {
		last := b.fragments[len(b.fragments)-1]
		b.fragments = []rag.Fragment{last}
	}
	b.windowIndex++
}

func (b *Windowed) WindowIndex() int {
	return b.windowIndex
}

// countSentences counts terminal punctuation marks, ignoring multi-dot
// ellipses and periods that belong to known abbreviations.
func countSentences(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		run := trailingPunctRun(token)
		if run == "" {
			continue
		}
		if isEllipsis(run) {
			continue
		}
		if run == "." {
			if _, ok := abbreviations[strings.ToLower(token)]; ok {
				continue
			}
		}
		count++
	}
	return count
}

// trailingPunctRun returns the run of '.', '!', '?' at the end of a token.
func trailingPunctRun(token string) string {
	i := len(token)
	for i > 0 {
		c := token[i-1]
		if c != '.' && c != '!' && c != '?' {
			break
		}
		i--
	}
	return token[i:]
}

func isEllipsis(run string) bool {
	if len(run) < 2 {
		return false
	}
	for i := 0; i < len(run); i++ {
		if run[i] != '.' {
			return false
		}
	}
	return true
}
