package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/internal/pkg/logger"
	"ai-grading-be/internal/repository/specification"
	"ai-grading-be/internal/repository/unitofwork"
	"ai-grading-be/pkg/filestore"

	"github.com/google/uuid"
)

type IStudentAnswerService interface {
	Create(ctx context.Context, req *dto.CreateStudentAnswerRequest, fileData []byte) (*dto.CreateStudentAnswerResponse, error)
	Update(ctx context.Context, req *dto.UpdateStudentAnswerRequest) (*dto.ShowStudentAnswerResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowStudentAnswerResponse, error)
	List(ctx context.Context, answerKeyId *uuid.UUID) ([]*dto.ShowStudentAnswerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Process(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error)
}

type studentAnswerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	indexerService   IIndexerService
	fileStore        *filestore.LocalStore
	log              logger.ILogger
}

func NewStudentAnswerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	indexerService IIndexerService,
	fileStore *filestore.LocalStore,
	log logger.ILogger,
) IStudentAnswerService {
	return &studentAnswerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		indexerService:   indexerService,
		fileStore:        fileStore,
		log:              log,
	}
}

func (s *studentAnswerService) Create(ctx context.Context, req *dto.CreateStudentAnswerRequest, fileData []byte) (*dto.CreateStudentAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The referenced answer key must exist before a submission can point at it.
	answerKey, err := uow.AnswerKeyRepository().FindOne(ctx, specification.ByID{ID: req.AnswerKeyId})
	if err != nil {
		return nil, err
	}
	if answerKey == nil {
		return nil, apperror.NotFound(fmt.Sprintf("answer key %s", req.AnswerKeyId))
	}

	studentAnswer := entity.StudentAnswer{
		Id:             uuid.New(),
		FileName:       req.FileName,
		Content:        req.Content,
		FileType:       req.FileType,
		CollectionName: fmt.Sprintf("student_answer_%d", time.Now().UnixMilli()),
		StudentId:      req.StudentId,
		AnswerKeyId:    req.AnswerKeyId,
		FolderId:       req.FolderId,
		Processed:      false,
		Status:         entity.StatusUnprocessed,
		CreatedAt:      time.Now(),
	}

	if len(fileData) > 0 {
		path, err := s.fileStore.Save(req.FileName, fileData)
		if err != nil {
			return nil, err
		}
		studentAnswer.FilePath = path
		studentAnswer.FileSize = int64(len(fileData))
	}

	if err := uow.StudentAnswerRepository().Create(ctx, &studentAnswer); err != nil {
		return nil, err
	}

	msgJson, err := json.Marshal(dto.ProcessDocumentMessage{
		DocumentId: studentAnswer.Id,
		SourceType: string(entity.SourceStudentAnswer),
	})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.CreateStudentAnswerResponse{
		Id:             studentAnswer.Id,
		CollectionName: studentAnswer.CollectionName,
	}, nil
}

// Update mirrors the answer-key update: a content change invalidates the
// chunks and queues re-indexing fire-and-forget.
func (s *studentAnswerService) Update(ctx context.Context, req *dto.UpdateStudentAnswerRequest) (*dto.ShowStudentAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	studentAnswer, err := uow.StudentAnswerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if studentAnswer == nil {
		return nil, apperror.NotFound(fmt.Sprintf("student answer %s", req.Id))
	}

	contentChanged := req.Content != "" && req.Content != studentAnswer.Content
	if req.FileName != "" {
		studentAnswer.FileName = req.FileName
	}
	if req.FileType != "" {
		studentAnswer.FileType = req.FileType
	}
	if req.FolderId != uuid.Nil {
		studentAnswer.FolderId = req.FolderId
	}
	if contentChanged {
		studentAnswer.Content = req.Content
		studentAnswer.Processed = false
		studentAnswer.ProcessedAt = nil
		studentAnswer.Status = entity.StatusUnprocessed
	}
	now := time.Now()
	studentAnswer.UpdatedAt = &now

	if err := uow.StudentAnswerRepository().Update(ctx, studentAnswer); err != nil {
		return nil, err
	}

	if contentChanged {
		msgJson, err := json.Marshal(dto.ProcessDocumentMessage{
			DocumentId: studentAnswer.Id,
			SourceType: string(entity.SourceStudentAnswer),
		})
		if err == nil {
			err = s.publisherService.Publish(ctx, msgJson)
		}
		if err != nil {
			s.log.Warn("student_answer", "failed to queue re-indexing", map[string]interface{}{
				"student_answer_id": studentAnswer.Id.String(),
				"error":             err.Error(),
			})
		}
	}

	return studentAnswerToShowResponse(studentAnswer), nil
}

func (s *studentAnswerService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowStudentAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	studentAnswer, err := uow.StudentAnswerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if studentAnswer == nil {
		return nil, apperror.NotFound(fmt.Sprintf("student answer %s", id))
	}
	return studentAnswerToShowResponse(studentAnswer), nil
}

func (s *studentAnswerService) List(ctx context.Context, answerKeyId *uuid.UUID) ([]*dto.ShowStudentAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if answerKeyId != nil {
		specs = append(specs, specification.Filter("answer_key_id", *answerKeyId))
	}

	studentAnswers, err := uow.StudentAnswerRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowStudentAnswerResponse, len(studentAnswers))
	for i, sa := range studentAnswers {
		responses[i] = studentAnswerToShowResponse(sa)
	}
	return responses, nil
}

func (s *studentAnswerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	studentAnswer, err := uow.StudentAnswerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if studentAnswer == nil {
		return apperror.NotFound(fmt.Sprintf("student answer %s", id))
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StudentAnswerChunkRepository().DeleteByStudentAnswerId(ctx, id); err != nil {
		return err
	}
	if err := uow.StudentAnswerRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if studentAnswer.FilePath != "" {
		if err := s.fileStore.Delete(studentAnswer.FilePath); err != nil {
			s.log.Warn("student_answer", "failed to delete stored file", map[string]interface{}{
				"student_answer_id": id.String(),
				"file_path":         studentAnswer.FilePath,
				"error":             err.Error(),
			})
		}
	}

	return nil
}

func (s *studentAnswerService) Process(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	return s.indexerService.ProcessStudentAnswer(ctx, id)
}

func studentAnswerToShowResponse(studentAnswer *entity.StudentAnswer) *dto.ShowStudentAnswerResponse {
	return &dto.ShowStudentAnswerResponse{
		Id:             studentAnswer.Id,
		FileName:       studentAnswer.FileName,
		Content:        studentAnswer.Content,
		FileSize:       studentAnswer.FileSize,
		FileType:       studentAnswer.FileType,
		CollectionName: studentAnswer.CollectionName,
		StudentId:      studentAnswer.StudentId,
		AnswerKeyId:    studentAnswer.AnswerKeyId,
		FolderId:       studentAnswer.FolderId,
		Processed:      studentAnswer.Processed,
		ProcessedAt:    studentAnswer.ProcessedAt,
		CreatedAt:      studentAnswer.CreatedAt,
		UpdatedAt:      studentAnswer.UpdatedAt,
	}
}
