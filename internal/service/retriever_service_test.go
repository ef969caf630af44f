package service

import (
	"context"
	"errors"
	"testing"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveRelevantChunks(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.answerKeyChunks.hits = []*entity.RetrievedChunk{
		{Content: "closest", Distance: 0.05},
		{Content: "second", Distance: 0.12},
	}

	embedder := &stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}
	svc := NewRetrieverService(&fakeUowFactory{uow: uow}, embedder, memory.NewEmbeddingCache(), noopLogger{})

	chunks := svc.RetrieveRelevantChunks(context.Background(), "query", uuid.New(), 5)
	require.Len(t, chunks, 2)
	assert.Equal(t, "closest", chunks[0].Content)
	assert.Equal(t, "second", chunks[1].Content)
}

func TestRetrieveRelevantChunksCachesQueryEmbedding(t *testing.T) {
	uow := newFakeUnitOfWork()
	embedder := &stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}
	svc := NewRetrieverService(&fakeUowFactory{uow: uow}, embedder, memory.NewEmbeddingCache(), noopLogger{})

	answerKeyId := uuid.New()
	svc.RetrieveRelevantChunks(context.Background(), "same query", answerKeyId, 5)
	svc.RetrieveRelevantChunks(context.Background(), "same query", answerKeyId, 5)

	assert.Equal(t, 1, embedder.calls)
}

func TestRetrieveRelevantChunksDegradesOnEmbeddingFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	embedder := &stubEmbeddingProvider{err: errors.New("gateway down")}
	svc := NewRetrieverService(&fakeUowFactory{uow: uow}, embedder, memory.NewEmbeddingCache(), noopLogger{})

	chunks := svc.RetrieveRelevantChunks(context.Background(), "query", uuid.New(), 5)
	assert.Nil(t, chunks)
}

func TestRetrieveRelevantChunksDegradesOnSearchFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.answerKeyChunks.searchErr = errors.New("relation does not exist")

	embedder := &stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}
	svc := NewRetrieverService(&fakeUowFactory{uow: uow}, embedder, memory.NewEmbeddingCache(), noopLogger{})

	chunks := svc.RetrieveRelevantChunks(context.Background(), "query", uuid.New(), 5)
	assert.Nil(t, chunks)
}
