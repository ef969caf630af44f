package contract

import (
	"context"

	"ai-grading-be/internal/entity"

	"github.com/google/uuid"
)

// AnswerKeyChunkRepository stores embedded answer-key chunks. Every search is
// scoped to a single owning document via a mandatory equality filter, so a
// query can never leak chunks across answer keys.
type AnswerKeyChunkRepository interface {
	Create(ctx context.Context, chunk *entity.AnswerKeyChunk) error
	DeleteByAnswerKeyId(ctx context.Context, answerKeyId uuid.UUID) error
	CountByAnswerKeyId(ctx context.Context, answerKeyId uuid.UUID) (int64, error)
	// SearchSimilar returns up to limit chunks ordered by ascending cosine
	// distance to the query vector.
	SearchSimilar(ctx context.Context, embedding []float32, answerKeyId uuid.UUID, limit int) ([]*entity.RetrievedChunk, error)
}

type StudentAnswerChunkRepository interface {
	Create(ctx context.Context, chunk *entity.StudentAnswerChunk) error
	DeleteByStudentAnswerId(ctx context.Context, studentAnswerId uuid.UUID) error
	CountByStudentAnswerId(ctx context.Context, studentAnswerId uuid.UUID) (int64, error)
	SearchSimilar(ctx context.Context, embedding []float32, studentAnswerId uuid.UUID, limit int) ([]*entity.RetrievedChunk, error)
}
