package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Assessment struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StudentAnswerId uuid.UUID `gorm:"type:uuid;index"`
	AnswerKeyId     uuid.UUID `gorm:"type:uuid;index"`
	Score           float64
	MaxScore        float64 `gorm:"default:10"`
	FeedbackText    string  `gorm:"type:text"`
	FeedbackJson    datatypes.JSON
	Confidence      float64
	IsApproved      bool       `gorm:"default:false"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	AssessmentDate  time.Time
	StudentAnswer   *StudentAnswer `gorm:"foreignKey:StudentAnswerId"`
	AnswerKey       *AnswerKey     `gorm:"foreignKey:AnswerKeyId"`
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func (Assessment) TableName() string {
	return "assessments"
}
