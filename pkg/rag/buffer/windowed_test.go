package buffer

import (
	"strings"
	"testing"

	"lecture-lens-be/pkg/rag"
)

func frag(text string) rag.Fragment {
	return rag.Fragment{ID: "f", Text: text, IsFinal: true}
}

func TestWindowedIsReady(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      bool
	}{
		{
			name:      "empty buffer is never ready",
			fragments: nil,
			want:      false,
		},
		{
			name: "three sentences above word floor",
			fragments: []string{
				"The mitochondria is the powerhouse.",
				"It produces ATP constantly.",
				"Cells depend on this process daily.",
			},
			want: true,
		},
		{
			name:      "single fragment over the hard word cap",
			fragments: []string{strings.Repeat("word ", 200)},
			want:      true,
		},
		{
			name:      "two short fragments below word floor",
			fragments: []string{"one two three four five", "six seven eight nine ten"},
			want:      false,
		},
		{
			name: "two fragments above word floor without punctuation",
			fragments: []string{
				"the lecture covers thermodynamics and entropy in closed systems",
				"which we will revisit next week during the review",
			},
			want: true,
		},
		{
			name: "abbreviations do not count as sentence ends",
			fragments: []string{
				"Dr. Smith cited Fig. 3 from Vol. 2 of the proceedings",
			},
			want: false,
		},
		{
			name: "ellipsis does not count as a sentence end",
			fragments: []string{
				"so the integral converges... eventually we see why",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewWindowed()
			for _, f := range tt.fragments {
				b.Add(frag(f))
			}
			if got := b.IsReady(); got != tt.want {
				t.Errorf("IsReady() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowedIsReadyHasNoSideEffects(t *testing.T) {
	b := NewWindowed()
	b.Add(frag("short"))

	for i := 0; i < 5; i++ {
		if b.IsReady() {
			t.Fatalf("IsReady() = true on iteration %d for a short buffer", i)
		}
	}
	if b.Text() != "short" {
		t.Errorf("Text() = %q after repeated IsReady calls", b.Text())
	}
}

func TestWindowedText(t *testing.T) {
	b := NewWindowed()
	b.Add(frag("first part"))
	b.Add(frag("second part"))

	if got, want := b.Text(), "first part second part"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestWindowedAdvanceKeepsLastFragment(t *testing.T) {
	b := NewWindowed()
	b.Add(frag("A"))
	b.Add(frag("B"))
	b.Add(frag("C"))

	b.Advance()

	if got, want := b.Text(), "C"; got != want {
		t.Errorf("Text() after Advance = %q, want %q", got, want)
	}
	if got := b.WindowIndex(); got != 1 {
		t.Errorf("WindowIndex() = %d, want 1", got)
	}
}

func TestWindowedAdvanceOnEmptyBuffer(t *testing.T) {
	b := NewWindowed()

	b.Advance()

	if got := b.Text(); got != "" {
		t.Errorf("Text() after Advance on empty buffer = %q, want empty", got)
	}
	if got := b.WindowIndex(); got != 1 {
		t.Errorf("WindowIndex() = %d, want 1", got)
	}
}

func TestWindowIndexMonotonic(t *testing.T) {
	b := NewWindowed()
	prev := b.WindowIndex()
	for i := 0; i < 4; i++ {
		b.Add(frag("some words"))
		b.Advance()
		if b.WindowIndex() <= prev {
			t.Fatalf("WindowIndex() = %d did not increase past %d", b.WindowIndex(), prev)
		}
		prev = b.WindowIndex()
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"One. Two. Three.", 3},
		{"No terminal punctuation here", 0},
		{"Dr. Smith spoke.", 1},
		{"Wait... what happened?", 1},
		{"Really!? Yes.", 2},
		{"e.g. this and i.e. that.", 1},
	}

	for _, tt := range tests {
		if got := countSentences(tt.text); got != tt.want {
			t.Errorf("countSentences(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
