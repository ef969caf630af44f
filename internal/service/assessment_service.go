package service

import (
	"context"
	"fmt"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/internal/repository/specification"
	"ai-grading-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAssessmentService interface {
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowAssessmentResponse, error)
	List(ctx context.Context, req *dto.ListAssessmentsRequest) ([]*dto.ShowAssessmentResponse, error)
	Approve(ctx context.Context, req *dto.ApproveAssessmentRequest) (*dto.ShowAssessmentResponse, error)
}

type assessmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAssessmentService(uowFactory unitofwork.RepositoryFactory) IAssessmentService {
	return &assessmentService{
		uowFactory: uowFactory,
	}
}

func (s *assessmentService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowAssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	assessment, err := uow.AssessmentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, apperror.NotFound(fmt.Sprintf("assessment %s", id))
	}
	return assessmentToShowResponse(assessment), nil
}

func (s *assessmentService) List(ctx context.Context, req *dto.ListAssessmentsRequest) ([]*dto.ShowAssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if req.StudentAnswerId != nil {
		specs = append(specs, specification.Filter("student_answer_id", *req.StudentAnswerId))
	}
	if req.AnswerKeyId != nil {
		specs = append(specs, specification.Filter("answer_key_id", *req.AnswerKeyId))
	}
	if req.Limit > 0 {
		offset := 0
		if req.Page > 1 {
			offset = (req.Page - 1) * req.Limit
		}
		specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: offset})
	}

	assessments, err := uow.AssessmentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowAssessmentResponse, len(assessments))
	for i, a := range assessments {
		responses[i] = assessmentToShowResponse(a)
	}
	return responses, nil
}

func (s *assessmentService) Approve(ctx context.Context, req *dto.ApproveAssessmentRequest) (*dto.ShowAssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assessment, err := uow.AssessmentRepository().Approve(ctx, req.Id, req.ApprovedBy)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, apperror.NotFound(fmt.Sprintf("assessment %s", req.Id))
	}
	return assessmentToShowResponse(assessment), nil
}

func assessmentToShowResponse(assessment *entity.Assessment) *dto.ShowAssessmentResponse {
	return &dto.ShowAssessmentResponse{
		Id:              assessment.Id,
		StudentAnswerId: assessment.StudentAnswerId,
		AnswerKeyId:     assessment.AnswerKeyId,
		Score:           assessment.Score,
		MaxScore:        assessment.MaxScore,
		FeedbackText:    assessment.FeedbackText,
		FeedbackJson:    assessment.FeedbackJson,
		Confidence:      assessment.Confidence,
		IsApproved:      assessment.IsApproved,
		ApprovedBy:      assessment.ApprovedBy,
		AssessmentDate:  assessment.AssessmentDate,
		CreatedAt:       assessment.CreatedAt,
	}
}
