package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OperationAnalyzeAnswer  = "analyze_answer"
	OperationCompareAnswers = "compare_answers"

	// UsageLogNoAssessment is the sentinel AssessmentId for model calls that
	// do not produce a scored verdict (compare mode).
	UsageLogNoAssessment = "none"
)

// UsageLog is an append-only audit record of one model interaction.
// It is written best-effort: a failure here never fails the grading call.
type UsageLog struct {
	Id             uuid.UUID
	OperationType  string
	InputPrompt    string
	OutputText     string
	ProcessingTime float64
	TokenCount     int
	AssessmentId   string
	Confidence     float64
	CreatedAt      time.Time
}
