package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// EmbeddingDim is fixed system-wide and is part of the collection schema.
// A gateway producing vectors of a different length is a configuration
// error, not something the pipeline recovers from at runtime.
const EmbeddingDim = 1536

// Every chunk row carries exactly one owner id. Answer-key chunks and
// student-answer chunks live in separate tables so that invariant holds by
// construction instead of by two nullable columns.

type AnswerKeyChunk struct {
	Id           uint64    `gorm:"primaryKey;autoIncrement"`
	AnswerKeyId  uuid.UUID `gorm:"type:uuid;not null;index"`
	ChunkIndex   int       `gorm:"default:0"` // 0-based ordering
	ContentChunk string    `gorm:"type:text"`
	Embedding    pgvector.Vector `gorm:"type:vector(1536)"`
	Metadata     datatypes.JSON
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AnswerKeyChunk) TableName() string {
	return "answer_key_chunks"
}

type StudentAnswerChunk struct {
	Id              uint64    `gorm:"primaryKey;autoIncrement"`
	StudentAnswerId uuid.UUID `gorm:"type:uuid;not null;index"`
	ChunkIndex      int       `gorm:"default:0"`
	ContentChunk    string    `gorm:"type:text"`
	Embedding       pgvector.Vector `gorm:"type:vector(1536)"`
	Metadata        datatypes.JSON
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (StudentAnswerChunk) TableName() string {
	return "student_answer_chunks"
}
