package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAnswerKeyRequest struct {
	FileName  string    `json:"file_name" form:"file_name" validate:"required"`
	Content   string    `json:"content" form:"content" validate:"required"`
	FileType  string    `json:"file_type" form:"file_type"`
	SubjectId uuid.UUID `json:"subject_id" form:"subject_id" validate:"required"`
	TermId    uuid.UUID `json:"term_id" form:"term_id" validate:"required"`
}

// UpdateAnswerKeyRequest carries a partial update; empty fields keep their
// current value. Id comes from the route, not the body.
type UpdateAnswerKeyRequest struct {
	Id        uuid.UUID `json:"-"`
	FileName  string    `json:"file_name" form:"file_name"`
	Content   string    `json:"content" form:"content"`
	FileType  string    `json:"file_type" form:"file_type"`
	SubjectId uuid.UUID `json:"subject_id" form:"subject_id"`
	TermId    uuid.UUID `json:"term_id" form:"term_id"`
}

type CreateAnswerKeyResponse struct {
	Id             uuid.UUID `json:"id"`
	CollectionName string    `json:"collection_name"`
}

type ShowAnswerKeyResponse struct {
	Id             uuid.UUID  `json:"id"`
	FileName       string     `json:"file_name"`
	Content        string     `json:"content"`
	FileSize       int64      `json:"file_size"`
	FileType       string     `json:"file_type"`
	CollectionName string     `json:"collection_name"`
	SubjectId      uuid.UUID  `json:"subject_id"`
	TermId         uuid.UUID  `json:"term_id"`
	Processed      bool       `json:"processed"`
	ProcessedAt    *time.Time `json:"processed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type CreateStudentAnswerRequest struct {
	FileName    string    `json:"file_name" form:"file_name" validate:"required"`
	Content     string    `json:"content" form:"content" validate:"required"`
	FileType    string    `json:"file_type" form:"file_type"`
	StudentId   uuid.UUID `json:"student_id" form:"student_id" validate:"required"`
	AnswerKeyId uuid.UUID `json:"answer_key_id" form:"answer_key_id" validate:"required"`
	FolderId    uuid.UUID `json:"folder_id" form:"folder_id" validate:"required"`
}

type UpdateStudentAnswerRequest struct {
	Id       uuid.UUID `json:"-"`
	FileName string    `json:"file_name" form:"file_name"`
	Content  string    `json:"content" form:"content"`
	FileType string    `json:"file_type" form:"file_type"`
	FolderId uuid.UUID `json:"folder_id" form:"folder_id"`
}

type CreateStudentAnswerResponse struct {
	Id             uuid.UUID `json:"id"`
	CollectionName string    `json:"collection_name"`
}

type ShowStudentAnswerResponse struct {
	Id             uuid.UUID  `json:"id"`
	FileName       string     `json:"file_name"`
	Content        string     `json:"content"`
	FileSize       int64      `json:"file_size"`
	FileType       string     `json:"file_type"`
	CollectionName string     `json:"collection_name"`
	StudentId      uuid.UUID  `json:"student_id"`
	AnswerKeyId    uuid.UUID  `json:"answer_key_id"`
	FolderId       uuid.UUID  `json:"folder_id"`
	Processed      bool       `json:"processed"`
	ProcessedAt    *time.Time `json:"processed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// ProcessDocumentResponse reports the outcome of an embedding run.
type ProcessDocumentResponse struct {
	Id         uuid.UUID `json:"id"`
	ChunkCount int       `json:"chunk_count"`
	Processed  bool      `json:"processed"`
}
