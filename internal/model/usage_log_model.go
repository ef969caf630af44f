package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog rows are append-only; there is no update path.
// AssessmentId is a plain string (uuid or the "none" sentinel), deliberately
// without a foreign key so audit rows survive whatever happens to the
// assessment they reference.
type UsageLog struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperationType  string    `gorm:"index"`
	InputPrompt    string    `gorm:"type:text"`
	OutputText     string    `gorm:"type:text"`
	ProcessingTime float64
	TokenCount     int
	AssessmentId   string `gorm:"default:none"`
	Confidence     float64
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (UsageLog) TableName() string {
	return "llm_usage_logs"
}
