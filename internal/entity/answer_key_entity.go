package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingStatus tracks the embedding lifecycle of a document.
// "processing" acts as an exclusive lease so two concurrent ingestion
// triggers cannot both run the pipeline and double-insert chunks.
type ProcessingStatus string

const (
	StatusUnprocessed ProcessingStatus = "unprocessed"
	StatusProcessing  ProcessingStatus = "processing"
	StatusProcessed   ProcessingStatus = "processed"
)

// AnswerKey is the instructor-authored reference document used as grading
// ground truth. CollectionName is assigned once at creation and never changes.
type AnswerKey struct {
	Id             uuid.UUID
	FileName       string
	Content        string
	FilePath       string
	FileSize       int64
	FileType       string
	CollectionName string
	SubjectId      uuid.UUID
	TermId         uuid.UUID
	Processed      bool
	ProcessedAt    *time.Time
	Status         ProcessingStatus
	Subject        *Subject
	Term           *Term
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
