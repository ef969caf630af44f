package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChunkSource identifies which kind of document a chunk belongs to.
type ChunkSource string

const (
	SourceAnswerKey     ChunkSource = "answer_key"
	SourceStudentAnswer ChunkSource = "student_answer"
)

// ChunkMetadata is stored alongside every embedded chunk.
type ChunkMetadata struct {
	ChunkIndex  int         `json:"chunk_index"`
	TotalChunks int         `json:"total_chunks"`
	SourceType  ChunkSource `json:"source_type"`
}

// AnswerKeyChunk and StudentAnswerChunk are kept as distinct types on purpose:
// a record owns exactly one kind of document, and two types make that
// invariant a compile-time fact rather than a pair of nullable columns.

type AnswerKeyChunk struct {
	Id           uint64
	AnswerKeyId  uuid.UUID
	ChunkIndex   int
	ContentChunk string
	Embedding    []float32
	Metadata     ChunkMetadata
	CreatedAt    time.Time
}

type StudentAnswerChunk struct {
	Id              uint64
	StudentAnswerId uuid.UUID
	ChunkIndex      int
	ContentChunk    string
	Embedding       []float32
	Metadata        ChunkMetadata
	CreatedAt       time.Time
}

// RetrievedChunk is a similarity-search hit, ordered most similar first.
type RetrievedChunk struct {
	Content  string
	Metadata ChunkMetadata
	Distance float64
}
