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

type IAnswerKeyService interface {
	Create(ctx context.Context, req *dto.CreateAnswerKeyRequest, fileData []byte) (*dto.CreateAnswerKeyResponse, error)
	Update(ctx context.Context, req *dto.UpdateAnswerKeyRequest) (*dto.ShowAnswerKeyResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowAnswerKeyResponse, error)
	List(ctx context.Context) ([]*dto.ShowAnswerKeyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Process(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error)
}

type answerKeyService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	indexerService   IIndexerService
	fileStore        *filestore.LocalStore
	log              logger.ILogger
}

func NewAnswerKeyService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	indexerService IIndexerService,
	fileStore *filestore.LocalStore,
	log logger.ILogger,
) IAnswerKeyService {
	return &answerKeyService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		indexerService:   indexerService,
		fileStore:        fileStore,
		log:              log,
	}
}

func (s *answerKeyService) Create(ctx context.Context, req *dto.CreateAnswerKeyRequest, fileData []byte) (*dto.CreateAnswerKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answerKey := entity.AnswerKey{
		Id:       uuid.New(),
		FileName: req.FileName,
		Content:  req.Content,
		FileType: req.FileType,
		// Assigned once at creation, never updated afterwards.
		CollectionName: fmt.Sprintf("answer_key_%d", time.Now().UnixMilli()),
		SubjectId:      req.SubjectId,
		TermId:         req.TermId,
		Processed:      false,
		Status:         entity.StatusUnprocessed,
		CreatedAt:      time.Now(),
	}

	if len(fileData) > 0 {
		path, err := s.fileStore.Save(req.FileName, fileData)
		if err != nil {
			return nil, err
		}
		answerKey.FilePath = path
		answerKey.FileSize = int64(len(fileData))
	}

	if err := uow.AnswerKeyRepository().Create(ctx, &answerKey); err != nil {
		return nil, err
	}

	// Kick off embedding asynchronously; the consumer picks this up.
	msgJson, err := json.Marshal(dto.ProcessDocumentMessage{
		DocumentId: answerKey.Id,
		SourceType: string(entity.SourceAnswerKey),
	})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.CreateAnswerKeyResponse{
		Id:             answerKey.Id,
		CollectionName: answerKey.CollectionName,
	}, nil
}

// Update applies a partial edit. A content change invalidates the existing
// chunks, so the document drops back to unprocessed and re-indexing is queued
// fire-and-forget; a queue failure is logged, the update itself stands.
func (s *answerKeyService) Update(ctx context.Context, req *dto.UpdateAnswerKeyRequest) (*dto.ShowAnswerKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answerKey, err := uow.AnswerKeyRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if answerKey == nil {
		return nil, apperror.NotFound(fmt.Sprintf("answer key %s", req.Id))
	}

	contentChanged := req.Content != "" && req.Content != answerKey.Content
	if req.FileName != "" {
		answerKey.FileName = req.FileName
	}
	if req.FileType != "" {
		answerKey.FileType = req.FileType
	}
	if req.SubjectId != uuid.Nil {
		answerKey.SubjectId = req.SubjectId
	}
	if req.TermId != uuid.Nil {
		answerKey.TermId = req.TermId
	}
	if contentChanged {
		answerKey.Content = req.Content
		answerKey.Processed = false
		answerKey.ProcessedAt = nil
		answerKey.Status = entity.StatusUnprocessed
	}
	now := time.Now()
	answerKey.UpdatedAt = &now

	if err := uow.AnswerKeyRepository().Update(ctx, answerKey); err != nil {
		return nil, err
	}

	if contentChanged {
		s.queueReindex(ctx, answerKey.Id)
	}

	return answerKeyToShowResponse(answerKey), nil
}

func (s *answerKeyService) queueReindex(ctx context.Context, id uuid.UUID) {
	msgJson, err := json.Marshal(dto.ProcessDocumentMessage{
		DocumentId: id,
		SourceType: string(entity.SourceAnswerKey),
	})
	if err == nil {
		err = s.publisherService.Publish(ctx, msgJson)
	}
	if err != nil {
		s.log.Warn("answer_key", "failed to queue re-indexing", map[string]interface{}{
			"answer_key_id": id.String(),
			"error":         err.Error(),
		})
	}
}

func (s *answerKeyService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowAnswerKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	answerKey, err := uow.AnswerKeyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if answerKey == nil {
		return nil, apperror.NotFound(fmt.Sprintf("answer key %s", id))
	}
	return answerKeyToShowResponse(answerKey), nil
}

func (s *answerKeyService) List(ctx context.Context) ([]*dto.ShowAnswerKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	answerKeys, err := uow.AnswerKeyRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowAnswerKeyResponse, len(answerKeys))
	for i, ak := range answerKeys {
		responses[i] = answerKeyToShowResponse(ak)
	}
	return responses, nil
}

// Delete removes the document, its chunks and its stored file. Chunk and row
// deletes share a transaction so a failure leaves both intact.
func (s *answerKeyService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answerKey, err := uow.AnswerKeyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if answerKey == nil {
		return apperror.NotFound(fmt.Sprintf("answer key %s", id))
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.AnswerKeyChunkRepository().DeleteByAnswerKeyId(ctx, id); err != nil {
		return err
	}
	if err := uow.AnswerKeyRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if answerKey.FilePath != "" {
		if err := s.fileStore.Delete(answerKey.FilePath); err != nil {
			s.log.Warn("answer_key", "failed to delete stored file", map[string]interface{}{
				"answer_key_id": id.String(),
				"file_path":     answerKey.FilePath,
				"error":         err.Error(),
			})
		}
	}

	return nil
}

func (s *answerKeyService) Process(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	return s.indexerService.ProcessAnswerKey(ctx, id)
}

func answerKeyToShowResponse(answerKey *entity.AnswerKey) *dto.ShowAnswerKeyResponse {
	return &dto.ShowAnswerKeyResponse{
		Id:             answerKey.Id,
		FileName:       answerKey.FileName,
		Content:        answerKey.Content,
		FileSize:       answerKey.FileSize,
		FileType:       answerKey.FileType,
		CollectionName: answerKey.CollectionName,
		SubjectId:      answerKey.SubjectId,
		TermId:         answerKey.TermId,
		Processed:      answerKey.Processed,
		ProcessedAt:    answerKey.ProcessedAt,
		CreatedAt:      answerKey.CreatedAt,
		UpdatedAt:      answerKey.UpdatedAt,
	}
}
