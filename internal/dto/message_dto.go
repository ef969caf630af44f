package dto

import "github.com/google/uuid"

// ProcessDocumentMessage is the internal queue payload that triggers the
// embedding pipeline for one document.
type ProcessDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	SourceType string    `json:"source_type"` // "answer_key" or "student_answer"
}
