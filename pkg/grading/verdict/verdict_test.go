package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *ScoreVerdict
		wantErr bool
	}{
		{
			name: "plain JSON",
			raw:  `{"score": 8.5, "feedback": "well reasoned", "confidence": 92}`,
			want: &ScoreVerdict{Score: 8.5, Feedback: "well reasoned", Confidence: 92},
		},
		{
			name: "fenced JSON",
			raw:  "```json\n{\"score\": 5, \"feedback\": \"partial\", \"confidence\": 60}\n```",
			want: &ScoreVerdict{Score: 5, Feedback: "partial", Confidence: 60},
		},
		{
			name: "prose around the object",
			raw:  "Here is my evaluation:\n{\"score\": 10, \"feedback\": \"perfect\", \"confidence\": 99}\nHope that helps!",
			want: &ScoreVerdict{Score: 10, Feedback: "perfect", Confidence: 99},
		},
		{
			name:    "no JSON at all",
			raw:     "The student deserves about a 7 out of 10.",
			wantErr: true,
		},
		{
			name:    "missing confidence key",
			raw:     `{"score": 7, "feedback": "ok"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON is not repaired",
			raw:     `{"score": 7, "feedback": "ok", "confidence": }`,
			wantErr: true,
		},
		{
			name:    "empty output",
			raw:     "",
			wantErr: true,
		},
		{
			name: "score above the scale is clamped",
			raw:  `{"score": 42, "feedback": "generous", "confidence": 90}`,
			want: &ScoreVerdict{Score: 10, Feedback: "generous", Confidence: 90},
		},
		{
			name: "negative score is clamped to zero",
			raw:  `{"score": -3, "feedback": "harsh", "confidence": 80}`,
			want: &ScoreVerdict{Score: 0, Feedback: "harsh", Confidence: 80},
		},
		{
			name:    "confidence above 100 is rejected",
			raw:     `{"score": 7, "feedback": "ok", "confidence": 900}`,
			wantErr: true,
		},
		{
			name:    "negative confidence is rejected",
			raw:     `{"score": 7, "feedback": "ok", "confidence": -5}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScore(tt.raw, 10)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseComparison(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *ComparisonVerdict
		wantErr bool
	}{
		{
			name: "plain JSON",
			raw:  `{"correct_points": ["a", "b"], "incorrect_points": ["c"], "missing_points": [], "suggestions": "revise c"}`,
			want: &ComparisonVerdict{
				CorrectPoints:   []string{"a", "b"},
				IncorrectPoints: []string{"c"},
				MissingPoints:   []string{},
				Suggestions:     "revise c",
			},
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"correct_points\": [], \"incorrect_points\": [], \"missing_points\": [\"x\"], \"suggestions\": \"add x\"}\n```",
			want: &ComparisonVerdict{
				CorrectPoints:   []string{},
				IncorrectPoints: []string{},
				MissingPoints:   []string{"x"},
				Suggestions:     "add x",
			},
		},
		{
			name:    "missing suggestions key",
			raw:     `{"correct_points": [], "incorrect_points": [], "missing_points": []}`,
			wantErr: true,
		},
		{
			name:    "prose only",
			raw:     "The answers mostly match.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseComparison(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
