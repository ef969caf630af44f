package dto

import (
	"github.com/google/uuid"
)

type AnalyzeAnswerRequest struct {
	StudentAnswerId uuid.UUID `json:"student_answer_id" validate:"required"`
	AnswerKeyId     uuid.UUID `json:"answer_key_id" validate:"required"`
}

type AnalyzeAnswerResponse struct {
	AssessmentId uuid.UUID `json:"assessment_id"`
	Score        float64   `json:"score"`
	MaxScore     float64   `json:"max_score"`
	Feedback     string    `json:"feedback"`
	Confidence   float64   `json:"confidence"`
}

type CompareAnswersRequest struct {
	StudentAnswerId uuid.UUID `json:"student_answer_id" validate:"required"`
	AnswerKeyId     uuid.UUID `json:"answer_key_id" validate:"required"`
}

type CompareAnswersResponse struct {
	CorrectPoints   []string `json:"correct_points"`
	IncorrectPoints []string `json:"incorrect_points"`
	MissingPoints   []string `json:"missing_points"`
	Suggestions     string   `json:"suggestions"`
}
