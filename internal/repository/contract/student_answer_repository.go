package contract

import (
	"context"
	"time"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StudentAnswerRepository interface {
	Create(ctx context.Context, studentAnswer *entity.StudentAnswer) error
	Update(ctx context.Context, studentAnswer *entity.StudentAnswer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudentAnswer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudentAnswer, error)

	AcquireProcessingLease(ctx context.Context, id uuid.UUID) (bool, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error
	ReleaseProcessingLease(ctx context.Context, id uuid.UUID) error
}
