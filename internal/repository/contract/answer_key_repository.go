package contract

import (
	"context"
	"time"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnswerKeyRepository interface {
	Create(ctx context.Context, answerKey *entity.AnswerKey) error
	Update(ctx context.Context, answerKey *entity.AnswerKey) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnswerKey, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnswerKey, error)

	// AcquireProcessingLease atomically flips status to "processing" and
	// reports whether this caller won the lease. A false result means another
	// ingestion run is already underway.
	AcquireProcessingLease(ctx context.Context, id uuid.UUID) (bool, error)
	// MarkProcessed records a successful ingestion run.
	MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error
	// ReleaseProcessingLease returns a failed document to "unprocessed".
	ReleaseProcessingLease(ctx context.Context, id uuid.UUID) error
}
