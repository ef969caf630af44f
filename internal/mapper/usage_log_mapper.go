package mapper

import (
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/model"
)

type UsageLogMapper struct{}

func NewUsageLogMapper() *UsageLogMapper {
	return &UsageLogMapper{}
}

func (m *UsageLogMapper) ToEntity(e *model.UsageLog) *entity.UsageLog {
	if e == nil {
		return nil
	}
	return &entity.UsageLog{
		Id:             e.Id,
		OperationType:  e.OperationType,
		InputPrompt:    e.InputPrompt,
		OutputText:     e.OutputText,
		ProcessingTime: e.ProcessingTime,
		TokenCount:     e.TokenCount,
		AssessmentId:   e.AssessmentId,
		Confidence:     e.Confidence,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *UsageLogMapper) ToModel(e *entity.UsageLog) *model.UsageLog {
	if e == nil {
		return nil
	}
	return &model.UsageLog{
		Id:             e.Id,
		OperationType:  e.OperationType,
		InputPrompt:    e.InputPrompt,
		OutputText:     e.OutputText,
		ProcessingTime: e.ProcessingTime,
		TokenCount:     e.TokenCount,
		AssessmentId:   e.AssessmentId,
		Confidence:     e.Confidence,
		CreatedAt:      e.CreatedAt,
	}
}
