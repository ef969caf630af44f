package mapper

import (
	"encoding/json"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/model"

	"gorm.io/datatypes"
)

type AssessmentMapper struct {
	docMapper *DocumentMapper
}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{docMapper: NewDocumentMapper()}
}

func (m *AssessmentMapper) ToEntity(e *model.Assessment) *entity.Assessment {
	if e == nil {
		return nil
	}

	var feedbackJson map[string]interface{}
	if len(e.FeedbackJson) > 0 {
		_ = json.Unmarshal(e.FeedbackJson, &feedbackJson)
	}

	return &entity.Assessment{
		Id:              e.Id,
		StudentAnswerId: e.StudentAnswerId,
		AnswerKeyId:     e.AnswerKeyId,
		Score:           e.Score,
		MaxScore:        e.MaxScore,
		FeedbackText:    e.FeedbackText,
		FeedbackJson:    feedbackJson,
		Confidence:      e.Confidence,
		IsApproved:      e.IsApproved,
		ApprovedBy:      e.ApprovedBy,
		AssessmentDate:  e.AssessmentDate,
		StudentAnswer:   m.docMapper.StudentAnswerToEntity(e.StudentAnswer),
		AnswerKey:       m.docMapper.AnswerKeyToEntity(e.AnswerKey),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (m *AssessmentMapper) ToModel(e *entity.Assessment) *model.Assessment {
	if e == nil {
		return nil
	}

	feedbackJson := datatypes.JSON([]byte("{}"))
	if e.FeedbackJson != nil {
		if raw, err := json.Marshal(e.FeedbackJson); err == nil {
			feedbackJson = datatypes.JSON(raw)
		}
	}

	return &model.Assessment{
		Id:              e.Id,
		StudentAnswerId: e.StudentAnswerId,
		AnswerKeyId:     e.AnswerKeyId,
		Score:           e.Score,
		MaxScore:        e.MaxScore,
		FeedbackText:    e.FeedbackText,
		FeedbackJson:    feedbackJson,
		Confidence:      e.Confidence,
		IsApproved:      e.IsApproved,
		ApprovedBy:      e.ApprovedBy,
		AssessmentDate:  e.AssessmentDate,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
