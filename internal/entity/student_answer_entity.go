package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentAnswer is a submitted response document, linked to one answer key
// and one organizational folder.
type StudentAnswer struct {
	Id             uuid.UUID
	FileName       string
	Content        string
	FilePath       string
	FileSize       int64
	FileType       string
	CollectionName string
	StudentId      uuid.UUID
	AnswerKeyId    uuid.UUID
	FolderId       uuid.UUID
	Processed      bool
	ProcessedAt    *time.Time
	Status         ProcessingStatus
	Student        *Student
	AnswerKey      *AnswerKey
	Folder         *Folder
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
