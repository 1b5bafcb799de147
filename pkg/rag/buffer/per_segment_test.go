package buffer

import (
	"testing"

	"lecture-lens-be/pkg/rag"
)

func TestPerSegmentReadyOnAnyNonEmptyFragment(t *testing.T) {
	b := NewPerSegment()

	if b.IsReady() {
		t.Fatal("IsReady() = true before any fragment")
	}

	b.Add(rag.Fragment{Text: "hi"})
	if !b.IsReady() {
		t.Error("IsReady() = false after non-empty fragment")
	}
	if got := b.Text(); got != "hi" {
		t.Errorf("Text() = %q, want %q", got, "hi")
	}
}

func TestPerSegmentIgnoresWhitespaceOnly(t *testing.T) {
	b := NewPerSegment()
	b.Add(rag.Fragment{Text: "   "})

	if b.IsReady() {
		t.Error("IsReady() = true for whitespace-only fragment")
	}
}

func TestPerSegmentAdvanceKeepsNoOverlap(t *testing.T) {
	b := NewPerSegment()
	b.Add(rag.Fragment{Text: "something"})

	b.Advance()

	if b.IsReady() {
		t.Error("IsReady() = true after Advance")
	}
	if got := b.Text(); got != "" {
		t.Errorf("Text() = %q after Advance, want empty", got)
	}
	if got := b.WindowIndex(); got != 1 {
		t.Errorf("WindowIndex() = %d, want 1", got)
	}
}

func TestNewPolicySelection(t *testing.T) {
	tests := []struct {
		policy  string
		wantErr bool
	}{
		{PolicyWindowed, false},
		{PolicyPerSegment, false},
		{"", false},
		{"bogus", true},
	}

	for _, tt := range tests {
		_, err := New(tt.policy)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.policy, err, tt.wantErr)
		}
	}
}
