package contract

import (
	"context"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/specification"
)

// UsageLogRepository is append-only.
type UsageLogRepository interface {
	Create(ctx context.Context, usageLog *entity.UsageLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
