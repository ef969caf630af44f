package verdict

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ScoreVerdict is the structured outcome of a scoring call.
type ScoreVerdict struct {
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
	Confidence float64 `json:"confidence"`
}

// ComparisonVerdict is the structured outcome of a comparison call.
type ComparisonVerdict struct {
	CorrectPoints   []string `json:"correct_points"`
	IncorrectPoints []string `json:"incorrect_points"`
	MissingPoints   []string `json:"missing_points"`
	Suggestions     string   `json:"suggestions"`
}

// extractJSON tolerates the wrapping local models are prone to: markdown code
// fences and leading/trailing prose around the JSON object. It never repairs
// the JSON itself; malformed output stays an error.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object in model output")
	}
	return s[start : end+1], nil
}

func requireKeys(payload string, keys ...string) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return fmt.Errorf("model output is not valid JSON: %w", err)
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("model output missing required key %q", k)
		}
	}
	return nil
}

// ParseScore parses a scoring verdict. The score is clamped into
// [0, maxScore]; a confidence outside [0, 100] means the model ignored the
// response contract entirely, so it is rejected rather than repaired.
func ParseScore(raw string, maxScore float64) (*ScoreVerdict, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := requireKeys(payload, "score", "feedback", "confidence"); err != nil {
		return nil, err
	}

	var v ScoreVerdict
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, fmt.Errorf("decode score verdict: %w", err)
	}
	if v.Confidence < 0 || v.Confidence > 100 {
		return nil, fmt.Errorf("confidence %g outside [0, 100]", v.Confidence)
	}
	v.Score = math.Min(math.Max(v.Score, 0), maxScore)
	return &v, nil
}

func ParseComparison(raw string) (*ComparisonVerdict, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := requireKeys(payload, "correct_points", "incorrect_points", "missing_points", "suggestions"); err != nil {
		return nil, err
	}

	var v ComparisonVerdict
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, fmt.Errorf("decode comparison verdict: %w", err)
	}
	return &v, nil
}
