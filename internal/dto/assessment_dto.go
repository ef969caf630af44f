package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApproveAssessmentRequest struct {
	Id         uuid.UUID
	ApprovedBy uuid.UUID `json:"approved_by" validate:"required"`
}

type ShowAssessmentResponse struct {
	Id              uuid.UUID              `json:"id"`
	StudentAnswerId uuid.UUID              `json:"student_answer_id"`
	AnswerKeyId     uuid.UUID              `json:"answer_key_id"`
	Score           float64                `json:"score"`
	MaxScore        float64                `json:"max_score"`
	FeedbackText    string                 `json:"feedback_text"`
	FeedbackJson    map[string]interface{} `json:"feedback_json"`
	Confidence      float64                `json:"confidence"`
	IsApproved      bool                   `json:"is_approved"`
	ApprovedBy      *uuid.UUID             `json:"approved_by"`
	AssessmentDate  time.Time              `json:"assessment_date"`
	CreatedAt       time.Time              `json:"created_at"`
}

type ListAssessmentsRequest struct {
	StudentAnswerId *uuid.UUID `query:"student_answer_id"`
	AnswerKeyId     *uuid.UUID `query:"answer_key_id"`
	Page            int        `query:"page"`
	Limit           int        `query:"limit"`
}
