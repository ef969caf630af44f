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

type IStudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.ShowStudentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowStudentResponse, error)
	List(ctx context.Context) ([]*dto.ShowStudentResponse, error)
	Update(ctx context.Context, req *dto.UpdateStudentRequest) (*dto.ShowStudentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStudentService(uowFactory unitofwork.RepositoryFactory) IStudentService {
	return &studentService{uowFactory: uowFactory}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.ShowStudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student := entity.Student{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		ClassId:   req.ClassId,
		CreatedAt: time.Now(),
	}
	if err := uow.StudentRepository().Create(ctx, &student); err != nil {
		return nil, err
	}
	return studentToShowResponse(&student), nil
}

func (s *studentService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowStudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound(fmt.Sprintf("student %s", id))
	}
	return studentToShowResponse(student), nil
}

func (s *studentService) List(ctx context.Context) ([]*dto.ShowStudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	students, err := uow.StudentRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ShowStudentResponse, len(students))
	for i, st := range students {
		responses[i] = studentToShowResponse(st)
	}
	return responses, nil
}

func (s *studentService) Update(ctx context.Context, req *dto.UpdateStudentRequest) (*dto.ShowStudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound(fmt.Sprintf("student %s", req.Id))
	}

	now := time.Now()
	student.Name = req.Name
	student.Email = req.Email
	student.ClassId = req.ClassId
	student.UpdatedAt = &now

	if err := uow.StudentRepository().Update(ctx, student); err != nil {
		return nil, err
	}
	return studentToShowResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NotFound(fmt.Sprintf("student %s", id))
	}
	return uow.StudentRepository().Delete(ctx, id)
}

func studentToShowResponse(student *entity.Student) *dto.ShowStudentResponse {
	return &dto.ShowStudentResponse{
		Id:        student.Id,
		Name:      student.Name,
		Email:     student.Email,
		ClassId:   student.ClassId,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
}
