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

type ITermService interface {
	Create(ctx context.Context, req *dto.CreateTermRequest) (*dto.ShowTermResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowTermResponse, error)
	List(ctx context.Context) ([]*dto.ShowTermResponse, error)
	Update(ctx context.Context, req *dto.UpdateTermRequest) (*dto.ShowTermResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type termService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTermService(uowFactory unitofwork.RepositoryFactory) ITermService {
	return &termService{uowFactory: uowFactory}
}

func (s *termService) Create(ctx context.Context, req *dto.CreateTermRequest) (*dto.ShowTermResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	term := entity.Term{
		Id:        uuid.New(),
		TermName:  req.TermName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: time.Now(),
	}
	if err := uow.TermRepository().Create(ctx, &term); err != nil {
		return nil, err
	}
	return termToShowResponse(&term), nil
}

func (s *termService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowTermResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	term, err := uow.TermRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, apperror.NotFound(fmt.Sprintf("term %s", id))
	}
	return termToShowResponse(term), nil
}

func (s *termService) List(ctx context.Context) ([]*dto.ShowTermResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	terms, err := uow.TermRepository().FindAll(ctx, specification.OrderBy{Field: "start_date", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ShowTermResponse, len(terms))
	for i, t := range terms {
		responses[i] = termToShowResponse(t)
	}
	return responses, nil
}

func (s *termService) Update(ctx context.Context, req *dto.UpdateTermRequest) (*dto.ShowTermResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	term, err := uow.TermRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, apperror.NotFound(fmt.Sprintf("term %s", req.Id))
	}

	now := time.Now()
	term.TermName = req.TermName
	term.StartDate = req.StartDate
	term.EndDate = req.EndDate
	term.UpdatedAt = &now

	if err := uow.TermRepository().Update(ctx, term); err != nil {
		return nil, err
	}
	return termToShowResponse(term), nil
}

func (s *termService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	term, err := uow.TermRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if term == nil {
		return apperror.NotFound(fmt.Sprintf("term %s", id))
	}
	return uow.TermRepository().Delete(ctx, id)
}

func termToShowResponse(term *entity.Term) *dto.ShowTermResponse {
	return &dto.ShowTermResponse{
		Id:        term.Id,
		TermName:  term.TermName,
		StartDate: term.StartDate,
		EndDate:   term.EndDate,
		CreatedAt: term.CreatedAt,
		UpdatedAt: term.UpdatedAt,
	}
}
