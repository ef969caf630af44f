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

type IFolderService interface {
	Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.ShowFolderResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowFolderResponse, error)
	List(ctx context.Context) ([]*dto.ShowFolderResponse, error)
	Update(ctx context.Context, req *dto.UpdateFolderRequest) (*dto.ShowFolderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type folderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFolderService(uowFactory unitofwork.RepositoryFactory) IFolderService {
	return &folderService{uowFactory: uowFactory}
}

func (s *folderService) Create(ctx context.Context, req *dto.CreateFolderRequest) (*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder := entity.Folder{
		Id:         uuid.New(),
		FolderName: req.FolderName,
		TeacherId:  req.TeacherId,
		SubjectId:  req.SubjectId,
		CreatedAt:  time.Now(),
	}
	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}
	return folderToShowResponse(&folder), nil
}

func (s *folderService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound(fmt.Sprintf("folder %s", id))
	}
	return folderToShowResponse(folder), nil
}

func (s *folderService) List(ctx context.Context) ([]*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folders, err := uow.FolderRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ShowFolderResponse, len(folders))
	for i, f := range folders {
		responses[i] = folderToShowResponse(f)
	}
	return responses, nil
}

func (s *folderService) Update(ctx context.Context, req *dto.UpdateFolderRequest) (*dto.ShowFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound(fmt.Sprintf("folder %s", req.Id))
	}

	now := time.Now()
	folder.FolderName = req.FolderName
	folder.TeacherId = req.TeacherId
	folder.SubjectId = req.SubjectId
	folder.UpdatedAt = &now

	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}
	return folderToShowResponse(folder), nil
}

func (s *folderService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NotFound(fmt.Sprintf("folder %s", id))
	}
	return uow.FolderRepository().Delete(ctx, id)
}

func folderToShowResponse(folder *entity.Folder) *dto.ShowFolderResponse {
	return &dto.ShowFolderResponse{
		Id:         folder.Id,
		FolderName: folder.FolderName,
		TeacherId:  folder.TeacherId,
		SubjectId:  folder.SubjectId,
		CreatedAt:  folder.CreatedAt,
		UpdatedAt:  folder.UpdatedAt,
	}
}
