package service

import (
	"context"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/specification"
	"ai-grading-be/internal/repository/unitofwork"
)

type IUsageLogService interface {
	List(ctx context.Context, req *dto.ListUsageLogsRequest) ([]*dto.ShowUsageLogResponse, error)
}

type usageLogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUsageLogService(uowFactory unitofwork.RepositoryFactory) IUsageLogService {
	return &usageLogService{
		uowFactory: uowFactory,
	}
}

func (s *usageLogService) List(ctx context.Context, req *dto.ListUsageLogsRequest) ([]*dto.ShowUsageLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if req.OperationType != "" {
		specs = append(specs, specification.Filter("operation_type", req.OperationType))
	}
	if req.Limit > 0 {
		offset := 0
		if req.Page > 1 {
			offset = (req.Page - 1) * req.Limit
		}
		specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: offset})
	}

	usageLogs, err := uow.UsageLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowUsageLogResponse, len(usageLogs))
	for i, l := range usageLogs {
		responses[i] = usageLogToShowResponse(l)
	}
	return responses, nil
}

// The prompt and raw output stay out of the list response on purpose; they
// can be large and are only interesting for debugging individual calls.
func usageLogToShowResponse(usageLog *entity.UsageLog) *dto.ShowUsageLogResponse {
	return &dto.ShowUsageLogResponse{
		Id:             usageLog.Id,
		OperationType:  usageLog.OperationType,
		ProcessingTime: usageLog.ProcessingTime,
		TokenCount:     usageLog.TokenCount,
		AssessmentId:   usageLog.AssessmentId,
		Confidence:     usageLog.Confidence,
		CreatedAt:      usageLog.CreatedAt,
	}
}
