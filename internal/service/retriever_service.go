package service

import (
	"context"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/logger"
	"ai-grading-be/internal/repository/memory"
	"ai-grading-be/internal/repository/unitofwork"
	"ai-grading-be/pkg/embedding"

	"github.com/google/uuid"
)

// IRetrieverService finds the answer-key passages most similar to a query
// text. It degrades rather than fails: any error along the way (embedding
// gateway down, vector search failing) yields an empty result, and the
// grading call proceeds with whatever context it has.
type IRetrieverService interface {
	RetrieveRelevantChunks(ctx context.Context, queryText string, answerKeyId uuid.UUID, topK int) []*entity.RetrievedChunk
}

type retrieverService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	embeddingCache    *memory.EmbeddingCache
	log               logger.ILogger
}

func NewRetrieverService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	embeddingCache *memory.EmbeddingCache,
	log logger.ILogger,
) IRetrieverService {
	return &retrieverService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		embeddingCache:    embeddingCache,
		log:               log,
	}
}

func (s *retrieverService) RetrieveRelevantChunks(ctx context.Context, queryText string, answerKeyId uuid.UUID, topK int) []*entity.RetrievedChunk {
	queryVector, ok := s.embeddingCache.Get(queryText)
	if !ok {
		res, err := s.embeddingProvider.Generate(queryText, embedding.TaskRetrievalQuery)
		if err != nil {
			s.log.Warn("retriever", "query embedding failed, degrading to empty context", map[string]interface{}{
				"answer_key_id": answerKeyId.String(),
				"error":         err.Error(),
			})
			return nil
		}
		queryVector = res.Embedding.Values
		s.embeddingCache.Set(queryText, queryVector)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunks, err := uow.AnswerKeyChunkRepository().SearchSimilar(ctx, queryVector, answerKeyId, topK)
	if err != nil {
		s.log.Warn("retriever", "similarity search failed, degrading to empty context", map[string]interface{}{
			"answer_key_id": answerKeyId.String(),
			"error":         err.Error(),
		})
		return nil
	}

	return chunks
}
