package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInputSingleChunk(t *testing.T) {
	chunks := SplitText("short text", 1500, 200)
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Errorf("SplitText = %v, want single unchanged chunk", chunks)
	}
}

func TestSplitTextChunkSizeAndOverlap(t *testing.T) {
	text := strings.Repeat("a", 3000)
	chunks := SplitText(text, 1500, 200)

	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 1500 {
			t.Errorf("chunk %d length = %d, exceeds 1500", i, len(c))
		}
	}
	// Consecutive chunks share the overlap region.
	tail := chunks[0][len(chunks[0])-200:]
	if !strings.HasPrefix(chunks[1], tail) {
		t.Error("second chunk does not start with the first chunk's overlap tail")
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("b", 500)
	chunks := SplitText(text, 100, 100)

	if len(chunks) == 0 {
		t.Fatal("no chunks returned")
	}
	var rebuilt strings.Builder
	for _, c := range chunks {
		rebuilt.WriteString(c)
	}
	// With overlap >= chunk size the splitter falls back to disjoint steps.
	if rebuilt.String() != text {
		t.Error("chunks do not reassemble the input when overlap >= chunk size")
	}
}
