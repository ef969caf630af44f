package service

import (
	"context"
	"fmt"
	"time"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/internal/repository/specification"
	"ai-grading-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.ShowSubjectResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowSubjectResponse, error)
	List(ctx context.Context) ([]*dto.ShowSubjectResponse, error)
	Update(ctx context.Context, req *dto.UpdateSubjectRequest) (*dto.ShowSubjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type subjectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSubjectService(uowFactory unitofwork.RepositoryFactory) ISubjectService {
	return &subjectService{uowFactory: uowFactory}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.ShowSubjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subject := entity.Subject{
		Id:          uuid.New(),
		SubjectName: req.SubjectName,
		SubjectCode: req.SubjectCode,
		TeacherId:   req.TeacherId,
		ClassId:     req.ClassId,
		CreatedAt:   time.Now(),
	}
	if err := uow.SubjectRepository().Create(ctx, &subject); err != nil {
		return nil, err
	}
	return subjectToShowResponse(&subject), nil
}

func (s *subjectService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowSubjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperror.NotFound(fmt.Sprintf("subject %s", id))
	}
	return subjectToShowResponse(subject), nil
}

func (s *subjectService) List(ctx context.Context) ([]*dto.ShowSubjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subjects, err := uow.SubjectRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ShowSubjectResponse, len(subjects))
	for i, sub := range subjects {
		responses[i] = subjectToShowResponse(sub)
	}
	return responses, nil
}

func (s *subjectService) Update(ctx context.Context, req *dto.UpdateSubjectRequest) (*dto.ShowSubjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperror.NotFound(fmt.Sprintf("subject %s", req.Id))
	}

	now := time.Now()
	subject.SubjectName = req.SubjectName
	subject.SubjectCode = req.SubjectCode
	subject.TeacherId = req.TeacherId
	subject.ClassId = req.ClassId
	subject.UpdatedAt = &now

	if err := uow.SubjectRepository().Update(ctx, subject); err != nil {
		return nil, err
	}
	return subjectToShowResponse(subject), nil
}

func (s *subjectService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if subject == nil {
		return apperror.NotFound(fmt.Sprintf("subject %s", id))
	}
	return uow.SubjectRepository().Delete(ctx, id)
}

func subjectToShowResponse(subject *entity.Subject) *dto.ShowSubjectResponse {
	return &dto.ShowSubjectResponse{
		Id:          subject.Id,
		SubjectName: subject.SubjectName,
		SubjectCode: subject.SubjectCode,
		TeacherId:   subject.TeacherId,
		ClassId:     subject.ClassId,
		CreatedAt:   subject.CreatedAt,
		UpdatedAt:   subject.UpdatedAt,
	}
}
