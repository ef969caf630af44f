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

type ITeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.ShowTeacherResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowTeacherResponse, error)
	List(ctx context.Context) ([]*dto.ShowTeacherResponse, error)
	Update(ctx context.Context, req *dto.UpdateTeacherRequest) (*dto.ShowTeacherResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type teacherService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTeacherService(uowFactory unitofwork.RepositoryFactory) ITeacherService {
	return &teacherService{uowFactory: uowFactory}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.ShowTeacherResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	teacher := entity.Teacher{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	if err := uow.TeacherRepository().Create(ctx, &teacher); err != nil {
		return nil, err
	}
	return teacherToShowResponse(&teacher), nil
}

func (s *teacherService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowTeacherResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	teacher, err := uow.TeacherRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperror.NotFound(fmt.Sprintf("teacher %s", id))
	}
	return teacherToShowResponse(teacher), nil
}

func (s *teacherService) List(ctx context.Context) ([]*dto.ShowTeacherResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	teachers, err := uow.TeacherRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ShowTeacherResponse, len(teachers))
	for i, t := range teachers {
		responses[i] = teacherToShowResponse(t)
	}
	return responses, nil
}

func (s *teacherService) Update(ctx context.Context, req *dto.UpdateTeacherRequest) (*dto.ShowTeacherResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	teacher, err := uow.TeacherRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperror.NotFound(fmt.Sprintf("teacher %s", req.Id))
	}

	now := time.Now()
	teacher.Name = req.Name
	teacher.Email = req.Email
	teacher.UpdatedAt = &now

	if err := uow.TeacherRepository().Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacherToShowResponse(teacher), nil
}

func (s *teacherService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	teacher, err := uow.TeacherRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if teacher == nil {
		return apperror.NotFound(fmt.Sprintf("teacher %s", id))
	}
	return uow.TeacherRepository().Delete(ctx, id)
}

func teacherToShowResponse(teacher *entity.Teacher) *dto.ShowTeacherResponse {
	return &dto.ShowTeacherResponse{
		Id:        teacher.Id,
		Name:      teacher.Name,
		Email:     teacher.Email,
		CreatedAt: teacher.CreatedAt,
		UpdatedAt: teacher.UpdatedAt,
	}
}
