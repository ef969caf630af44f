package dto

import (
	"time"

	"github.com/google/uuid"
)

type ShowUsageLogResponse struct {
	Id             uuid.UUID `json:"id"`
	OperationType  string    `json:"operation_type"`
	ProcessingTime float64   `json:"processing_time"`
	TokenCount     int       `json:"token_count"`
	AssessmentId   string    `json:"assessment_id"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListUsageLogsRequest struct {
	OperationType string `query:"operation_type"`
	Page          int    `query:"page"`
	Limit         int    `query:"limit"`
}
