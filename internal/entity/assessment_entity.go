package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is the persisted, scored outcome of grading one student answer
// against one answer key. Re-grading creates a new Assessment; an existing one
// is only ever mutated to flip its approval fields.
type Assessment struct {
	Id              uuid.UUID
	StudentAnswerId uuid.UUID
	AnswerKeyId     uuid.UUID
	Score           float64
	MaxScore        float64
	FeedbackText    string
	FeedbackJson    map[string]interface{}
	Confidence      float64
	IsApproved      bool
	ApprovedBy      *uuid.UUID
	AssessmentDate  time.Time
	StudentAnswer   *StudentAnswer
	AnswerKey       *AnswerKey
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
