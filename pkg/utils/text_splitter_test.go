package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "empty input",
			text:       "",
			chunkSize:  10,
			overlap:    2,
			wantChunks: 0,
		},
		{
			name:       "fits in one chunk",
			text:       "short",
			chunkSize:  10,
			overlap:    2,
			wantChunks: 1,
		},
		{
			name:       "exact chunk size",
			text:       "0123456789",
			chunkSize:  10,
			overlap:    2,
			wantChunks: 1,
		},
		{
			name:       "two chunks with overlap",
			text:       "0123456789abcdef",
			chunkSize:  10,
			overlap:    2,
			wantChunks: 2,
		},
		{
			name:       "overlap larger than chunk size falls back to full step",
			text:       "0123456789abcdef",
			chunkSize:  4,
			overlap:    10,
			wantChunks: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(chunks) != tt.wantChunks {
				t.Errorf("chunk count = %d, want %d", len(chunks), tt.wantChunks)
			}
		})
	}
}

func TestSplitTextOverlapPreservesContext(t *testing.T) {
	text := "0123456789abcdefghij"
	chunks := SplitText(text, 10, 3)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Each chunk starts with the tail of its predecessor.
	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		tail := prev[len(prev)-3:]
		if !strings.HasPrefix(chunks[i], tail) {
			t.Errorf("chunk %d %q does not start with previous tail %q", i, chunks[i], tail)
		}
	}
}

func TestSplitTextDeterministic(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 50)
	first := SplitText(text, 100, 20)
	second := SplitText(text, 100, 20)

	if len(first) != len(second) {
		t.Fatalf("runs disagree on chunk count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplitTextRecursivePrefersParagraphBoundaries(t *testing.T) {
	text := "First paragraph with some words.\n\nSecond paragraph with more words.\n\nThird one."
	chunks := SplitTextRecursive(text, 40, 10)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// Re-joined chunks reproduce the input because separators stay attached.
	if joined := strings.Join(chunks, ""); joined != text {
		t.Errorf("joined chunks differ from input:\n%q\nvs\n%q", joined, text)
	}
}

func TestSplitTextRecursiveHandlesUnbrokenToken(t *testing.T) {
	text := strings.Repeat("x", 500)
	chunks := SplitTextRecursive(text, 100, 10)

	if len(chunks) < 2 {
		t.Fatalf("expected hard cuts for unbroken input, got %d chunks", len(chunks))
	}
	for i, c := range chunks {
		if utf8.RuneCountInString(c) > 100 {
			t.Errorf("chunk %d exceeds chunk size: %d runes", i, utf8.RuneCountInString(c))
		}
	}
}

func TestSplitTextRecursiveEmptyInput(t *testing.T) {
	if chunks := SplitTextRecursive("", 100, 10); chunks != nil {
		t.Errorf("expected nil for empty input, got %v", chunks)
	}
}

func TestSplitTextRecursiveNonEmptyAlwaysYieldsChunk(t *testing.T) {
	for _, text := range []string{"a", "two words", "line\nbreak", strings.Repeat("word ", 1000)} {
		if chunks := SplitTextRecursive(text, 50, 5); len(chunks) == 0 {
			t.Errorf("no chunks for input of length %d", len(text))
		}
	}
}
