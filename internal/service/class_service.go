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

type IClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ShowClassResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowClassResponse, error)
	List(ctx context.Context) ([]*dto.ShowClassResponse, error)
	Update(ctx context.Context, req *dto.UpdateClassRequest) (*dto.ShowClassResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type classService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewClassService(uowFactory unitofwork.RepositoryFactory) IClassService {
	return &classService{uowFactory: uowFactory}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ShowClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	class := entity.Class{
		Id:           uuid.New(),
		ClassName:    req.ClassName,
		AcademicYear: req.AcademicYear,
		TeacherId:    req.TeacherId,
		CreatedAt:    time.Now(),
	}
	if err := uow.ClassRepository().Create(ctx, &class); err != nil {
		return nil, err
	}
	return classToShowResponse(&class), nil
}

func (s *classService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	class, err := uow.ClassRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, apperror.NotFound(fmt.Sprintf("class %s", id))
	}
	return classToShowResponse(class), nil
}

func (s *classService) List(ctx context.Context) ([]*dto.ShowClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	classes, err := uow.ClassRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ShowClassResponse, len(classes))
	for i, c := range classes {
		responses[i] = classToShowResponse(c)
	}
	return responses, nil
}

func (s *classService) Update(ctx context.Context, req *dto.UpdateClassRequest) (*dto.ShowClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	class, err := uow.ClassRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, apperror.NotFound(fmt.Sprintf("class %s", req.Id))
	}

	now := time.Now()
	class.ClassName = req.ClassName
	class.AcademicYear = req.AcademicYear
	class.TeacherId = req.TeacherId
	class.UpdatedAt = &now

	if err := uow.ClassRepository().Update(ctx, class); err != nil {
		return nil, err
	}
	return classToShowResponse(class), nil
}

func (s *classService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	class, err := uow.ClassRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if class == nil {
		return apperror.NotFound(fmt.Sprintf("class %s", id))
	}
	return uow.ClassRepository().Delete(ctx, id)
}

func classToShowResponse(class *entity.Class) *dto.ShowClassResponse {
	return &dto.ShowClassResponse{
		Id:           class.Id,
		ClassName:    class.ClassName,
		AcademicYear: class.AcademicYear,
		TeacherId:    class.TeacherId,
		CreatedAt:    class.CreatedAt,
		UpdatedAt:    class.UpdatedAt,
	}
}
