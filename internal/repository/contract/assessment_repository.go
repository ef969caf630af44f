package contract

import (
	"context"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Approve is the only mutation an assessment ever sees.
	Approve(ctx context.Context, id uuid.UUID, approvedBy uuid.UUID) (*entity.Assessment, error)
}
