package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScore(t *testing.T) {
	out, err := RenderScore(Data{
		AnswerKey:     "KEY CONTEXT",
		StudentAnswer: "STUDENT TEXT",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "KEY CONTEXT")
	assert.Contains(t, out, "STUDENT TEXT")
	assert.Contains(t, out, `"score"`)
	assert.Contains(t, out, `"feedback"`)
	assert.Contains(t, out, `"confidence"`)
	// Key context precedes the student answer in the prompt.
	assert.Less(t, strings.Index(out, "KEY CONTEXT"), strings.Index(out, "STUDENT TEXT"))
}

func TestRenderCompare(t *testing.T) {
	out, err := RenderCompare(Data{
		AnswerKey:     "FULL KEY",
		StudentAnswer: "FULL ANSWER",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "FULL KEY")
	assert.Contains(t, out, "FULL ANSWER")
	for _, key := range []string{`"correct_points"`, `"incorrect_points"`, `"missing_points"`, `"suggestions"`} {
		assert.Contains(t, out, key)
	}
}

func TestRenderScoreEmptyContext(t *testing.T) {
	// Retrieval can legitimately come back empty; the template still renders.
	out, err := RenderScore(Data{AnswerKey: "", StudentAnswer: "only the student text"})
	require.NoError(t, err)
	assert.Contains(t, out, "only the student text")
}
