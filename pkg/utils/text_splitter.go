package utils

import (
	"strings"
	"unicode/utf8"
)

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with an 'overlap' to preserve context at boundaries. Character
// based and deterministic: the same input always yields the same chunks.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) == 0 {
		return nil
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}

// recursiveSeparators are tried in order: paragraph breaks first, then line
// breaks, sentence ends, and words. The empty string is the terminal case and
// means "give up and cut mid-word".
var recursiveSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// SplitTextRecursive prefers splitting at natural text boundaries and only
// degrades to hard character cuts for pathological inputs (e.g. one giant
// unbroken token). Callers can treat it as a drop-in for SplitText: for
// non-empty input it always produces at least one chunk, and no chunk
// meaningfully exceeds chunkSize.
func SplitTextRecursive(text string, chunkSize int, overlap int) []string {
	if len(text) == 0 {
		return nil
	}
	if chunkSize <= 0 {
		return SplitText(text, chunkSize, overlap)
	}

	chunks := splitRecursive(text, recursiveSeparators, chunkSize, overlap)
	if len(chunks) == 0 {
		// Should not happen, but the window splitter is the safe floor.
		return SplitText(text, chunkSize, overlap)
	}
	return chunks
}

func splitRecursive(text string, seps []string, chunkSize int, overlap int) []string {
	if utf8.RuneCountInString(text) <= chunkSize {
		return []string{text}
	}

	// Pick the first separator that actually occurs in this stretch of text.
	sep := ""
	var remaining []string
	for i, s := range seps {
		if s == "" {
			sep = ""
			break
		}
		if strings.Contains(text, s) {
			sep = s
			remaining = seps[i+1:]
			break
		}
	}

	if sep == "" {
		return SplitText(text, chunkSize, overlap)
	}

	// SplitAfter keeps the separator attached so re-joined chunks reproduce
	// the original text verbatim.
	parts := strings.SplitAfter(text, sep)

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, part := range parts {
		partLen := utf8.RuneCountInString(part)
		if partLen > chunkSize {
			flush()
			chunks = append(chunks, splitRecursive(part, remaining, chunkSize, overlap)...)
			continue
		}
		if currentLen+partLen > chunkSize {
			flush()
		}
		current.WriteString(part)
		currentLen += partLen
	}
	flush()

	return chunks
}
