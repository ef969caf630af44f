package service

import (
	"context"
	"fmt"
	"time"

	"ai-grading-be/internal/config"
	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/internal/pkg/logger"
	"ai-grading-be/internal/repository/specification"
	"ai-grading-be/internal/repository/unitofwork"
	"ai-grading-be/pkg/database"
	"ai-grading-be/pkg/embedding"
	"ai-grading-be/pkg/events"
	pkgNats "ai-grading-be/pkg/nats"
	"ai-grading-be/pkg/utils"

	"github.com/google/uuid"
)

const (
	answerKeyChunkTable     = "answer_key_chunks"
	studentAnswerChunkTable = "student_answer_chunks"
)

// IIndexerService runs the embedding pipeline for one document: lease, chunk,
// embed, swap the chunk set atomically, mark processed.
type IIndexerService interface {
	ProcessAnswerKey(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error)
	ProcessStudentAnswer(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error)
}

type indexerService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	indexManager      *database.VectorIndexManager
	eventPublisher    *pkgNats.Publisher
	vectorCfg         config.VectorConfig
	log               logger.ILogger
}

func NewIndexerService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	indexManager *database.VectorIndexManager,
	eventPublisher *pkgNats.Publisher,
	vectorCfg config.VectorConfig,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		indexManager:      indexManager,
		eventPublisher:    eventPublisher,
		vectorCfg:         vectorCfg,
		log:               log,
	}
}

// embedChunks turns document text into ordered embedded chunks. Calls the
// gateway one chunk at a time; a failure anywhere aborts the whole run so a
// document is never half-indexed.
func (s *indexerService) embedChunks(content string) ([]string, [][]float32, error) {
	chunks := utils.SplitTextRecursive(content, s.vectorCfg.ChunkSize, s.vectorCfg.ChunkOverlap)

	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			return nil, nil, apperror.Upstream(fmt.Sprintf("embed chunk %d", i), err)
		}
		values := res.Embedding.Values
		if len(values) != s.vectorCfg.EmbeddingDim {
			return nil, nil, fmt.Errorf("embedding dimension mismatch: got %d, schema expects %d",
				len(values), s.vectorCfg.EmbeddingDim)
		}
		vectors = append(vectors, values)
	}
	return chunks, vectors, nil
}

func (s *indexerService) ProcessAnswerKey(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answerKey, err := uow.AnswerKeyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if answerKey == nil {
		return nil, apperror.NotFound(fmt.Sprintf("answer key %s", id))
	}

	acquired, err := uow.AnswerKeyRepository().AcquireProcessingLease(ctx, id)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperror.Conflict(fmt.Sprintf("answer key %s is already being processed", id))
	}

	// From here on every failure path must hand the lease back. The release
	// runs on its own unit of work: going through the indexing transaction
	// would roll the release back along with it and leave the lease held.
	releaseLease := func() {
		if err := s.uowFactory.NewUnitOfWork(ctx).AnswerKeyRepository().ReleaseProcessingLease(ctx, id); err != nil {
			s.log.Error("indexer", "failed to release processing lease", map[string]interface{}{
				"answer_key_id": id.String(),
				"error":         err.Error(),
			})
		}
	}

	if err := s.indexManager.Ensure(ctx, answerKeyChunkTable); err != nil {
		releaseLease()
		return nil, err
	}

	chunks, vectors, err := s.embedChunks(answerKey.Content)
	if err != nil {
		releaseLease()
		return nil, err
	}

	s.log.Info("indexer", "embedding answer key", map[string]interface{}{
		"answer_key_id": id.String(),
		"chunk_count":   len(chunks),
	})

	if err := uow.Begin(ctx); err != nil {
		releaseLease()
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AnswerKeyChunkRepository().DeleteByAnswerKeyId(ctx, id); err != nil {
		releaseLease()
		return nil, err
	}

	for i, chunk := range chunks {
		record := &entity.AnswerKeyChunk{
			AnswerKeyId:  id,
			ChunkIndex:   i,
			ContentChunk: chunk,
			Embedding:    vectors[i],
			Metadata: entity.ChunkMetadata{
				ChunkIndex:  i,
				TotalChunks: len(chunks),
				SourceType:  entity.SourceAnswerKey,
			},
			CreatedAt: time.Now(),
		}
		if err := uow.AnswerKeyChunkRepository().Create(ctx, record); err != nil {
			releaseLease()
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		releaseLease()
		return nil, err
	}

	if err := uow.AnswerKeyRepository().MarkProcessed(ctx, id, time.Now()); err != nil {
		releaseLease()
		return nil, err
	}

	s.publishProcessed(ctx, id, string(entity.SourceAnswerKey), len(chunks))

	return &dto.ProcessDocumentResponse{
		Id:         id,
		ChunkCount: len(chunks),
		Processed:  true,
	}, nil
}

func (s *indexerService) ProcessStudentAnswer(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	studentAnswer, err := uow.StudentAnswerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if studentAnswer == nil {
		return nil, apperror.NotFound(fmt.Sprintf("student answer %s", id))
	}

	acquired, err := uow.StudentAnswerRepository().AcquireProcessingLease(ctx, id)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperror.Conflict(fmt.Sprintf("student answer %s is already being processed", id))
	}

	// Same rule as the answer-key path: the release never rides the
	// indexing transaction.
	releaseLease := func() {
		if err := s.uowFactory.NewUnitOfWork(ctx).StudentAnswerRepository().ReleaseProcessingLease(ctx, id); err != nil {
			s.log.Error("indexer", "failed to release processing lease", map[string]interface{}{
				"student_answer_id": id.String(),
				"error":             err.Error(),
			})
		}
	}

	if err := s.indexManager.Ensure(ctx, studentAnswerChunkTable); err != nil {
		releaseLease()
		return nil, err
	}

	chunks, vectors, err := s.embedChunks(studentAnswer.Content)
	if err != nil {
		releaseLease()
		return nil, err
	}

	s.log.Info("indexer", "embedding student answer", map[string]interface{}{
		"student_answer_id": id.String(),
		"chunk_count":       len(chunks),
	})

	if err := uow.Begin(ctx); err != nil {
		releaseLease()
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.StudentAnswerChunkRepository().DeleteByStudentAnswerId(ctx, id); err != nil {
		releaseLease()
		return nil, err
	}

	for i, chunk := range chunks {
		record := &entity.StudentAnswerChunk{
			StudentAnswerId: id,
			ChunkIndex:      i,
			ContentChunk:    chunk,
			Embedding:       vectors[i],
			Metadata: entity.ChunkMetadata{
				ChunkIndex:  i,
				TotalChunks: len(chunks),
				SourceType:  entity.SourceStudentAnswer,
			},
			CreatedAt: time.Now(),
		}
		if err := uow.StudentAnswerChunkRepository().Create(ctx, record); err != nil {
			releaseLease()
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		releaseLease()
		return nil, err
	}

	if err := uow.StudentAnswerRepository().MarkProcessed(ctx, id, time.Now()); err != nil {
		releaseLease()
		return nil, err
	}

	s.publishProcessed(ctx, id, string(entity.SourceStudentAnswer), len(chunks))

	return &dto.ProcessDocumentResponse{
		Id:         id,
		ChunkCount: len(chunks),
		Processed:  true,
	}, nil
}

// publishProcessed notifies listeners; indexing outcome never depends on it.
func (s *indexerService) publishProcessed(ctx context.Context, id uuid.UUID, sourceType string, chunkCount int) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewDocumentProcessed(id, sourceType, chunkCount)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("indexer", "failed to publish document processed event", map[string]interface{}{
			"document_id": id.String(),
			"error":       err.Error(),
		})
	}
}
