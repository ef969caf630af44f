package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-grading-be/internal/config"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	statements []string
	err        error
}

func (e *recordingExecutor) Exec(ctx context.Context, sql string) error {
	if e.err != nil {
		return e.err
	}
	e.statements = append(e.statements, sql)
	return nil
}

func indexerFixture(uow *fakeUnitOfWork, embedder *stubEmbeddingProvider, exec *recordingExecutor) IIndexerService {
	return NewIndexerService(
		&fakeUowFactory{uow: uow},
		embedder,
		database.NewVectorIndexManager(exec, database.VectorIndexConfig{M: 16, EfConstruction: 64}),
		nil,
		config.VectorConfig{EmbeddingDim: 3, ChunkSize: 40, ChunkOverlap: 10},
		noopLogger{},
	)
}

func TestProcessAnswerKey(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{
		Id:      id,
		Content: strings.Repeat("Mitochondria are the powerhouse of the cell. ", 4),
	}

	embedder := &stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}
	exec := &recordingExecutor{}
	svc := indexerFixture(uow, embedder, exec)

	res, err := svc.ProcessAnswerKey(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, res.Id)
	assert.True(t, res.Processed)
	assert.Greater(t, res.ChunkCount, 1)
	assert.Len(t, uow.answerKeyChunks.chunks, res.ChunkCount)

	for i, chunk := range uow.answerKeyChunks.chunks {
		assert.Equal(t, id, chunk.AnswerKeyId)
		assert.Equal(t, i, chunk.ChunkIndex)
		assert.Equal(t, i, chunk.Metadata.ChunkIndex)
		assert.Equal(t, res.ChunkCount, chunk.Metadata.TotalChunks)
		assert.Equal(t, entity.SourceAnswerKey, chunk.Metadata.SourceType)
		assert.Len(t, chunk.Embedding, 3)
	}

	assert.True(t, uow.committed)
	assert.True(t, uow.answerKeys.processed)
	assert.False(t, uow.answerKeys.released)

	// Extension plus HNSW index DDL ran before any insert.
	require.Len(t, exec.statements, 2)
	assert.Contains(t, exec.statements[1], "hnsw")
	assert.Contains(t, exec.statements[1], answerKeyChunkTable)
}

func TestProcessAnswerKeyNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := indexerFixture(uow, &stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}, &recordingExecutor{})

	_, err := svc.ProcessAnswerKey(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProcessAnswerKeyConflictWhenLeaseHeld(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{Id: id, Content: "short"}
	uow.answerKeys.leased = true

	svc := indexerFixture(uow, &stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}, &recordingExecutor{})

	_, err := svc.ProcessAnswerKey(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Empty(t, uow.answerKeyChunks.chunks)
}

func TestProcessAnswerKeyReleasesLeaseOnEmbedFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{Id: id, Content: "some content to embed"}

	embedder := &stubEmbeddingProvider{err: errors.New("gateway down")}
	svc := indexerFixture(uow, embedder, &recordingExecutor{})

	_, err := svc.ProcessAnswerKey(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperror.IsUpstream(err))
	assert.True(t, uow.answerKeys.released)
	assert.False(t, uow.answerKeys.processed)
	assert.Empty(t, uow.answerKeyChunks.chunks)
}

func TestProcessAnswerKeyRejectsDimensionMismatch(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{Id: id, Content: "some content to embed"}

	// Provider returns 2 values while the schema expects 3.
	embedder := &stubEmbeddingProvider{vector: []float32{0.1, 0.2}}
	svc := indexerFixture(uow, embedder, &recordingExecutor{})

	_, err := svc.ProcessAnswerKey(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")
	assert.True(t, uow.answerKeys.released)
}

func TestProcessAnswerKeyReleasesLeaseOutsideFailedTransaction(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{Id: id, Content: "some content to embed"}
	uow.answerKeyChunks.createErr = errors.New("insert failed")

	// The cleanup uow stands in for a fresh connection outside the aborted
	// transaction; the release must land there, not on the tx-bound uow.
	cleanup := newFakeUnitOfWork()
	factory := &fakeUowFactory{uow: uow, cleanup: cleanup}

	svc := NewIndexerService(
		factory,
		&stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}},
		database.NewVectorIndexManager(&recordingExecutor{}, database.VectorIndexConfig{M: 16, EfConstruction: 64}),
		nil,
		config.VectorConfig{EmbeddingDim: 3, ChunkSize: 40, ChunkOverlap: 10},
		noopLogger{},
	)

	_, err := svc.ProcessAnswerKey(context.Background(), id)
	require.Error(t, err)

	assert.True(t, uow.rolledBack)
	assert.False(t, uow.committed)
	assert.True(t, cleanup.answerKeys.released, "lease release must use a unit of work outside the rolled-back transaction")
	assert.False(t, uow.answerKeys.released)
	assert.False(t, uow.answerKeys.processed)
}

func TestProcessAnswerKeyReleasesLeaseWhenMarkProcessedFails(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{Id: id, Content: "some content to embed"}
	uow.answerKeys.markErr = errors.New("update failed")

	cleanup := newFakeUnitOfWork()
	factory := &fakeUowFactory{uow: uow, cleanup: cleanup}

	svc := NewIndexerService(
		factory,
		&stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}},
		database.NewVectorIndexManager(&recordingExecutor{}, database.VectorIndexConfig{M: 16, EfConstruction: 64}),
		nil,
		config.VectorConfig{EmbeddingDim: 3, ChunkSize: 40, ChunkOverlap: 10},
		noopLogger{},
	)

	_, err := svc.ProcessAnswerKey(context.Background(), id)
	require.Error(t, err)

	assert.True(t, uow.committed, "chunk swap commits before the processed flag update")
	assert.True(t, cleanup.answerKeys.released)
	assert.False(t, uow.answerKeys.processed)
}

func TestProcessStudentAnswer(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.studentAnswers.studentAnswer = &entity.StudentAnswer{
		Id:      id,
		Content: strings.Repeat("The cell membrane controls what enters. ", 4),
	}

	embedder := &stubEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}
	svc := indexerFixture(uow, embedder, &recordingExecutor{})

	res, err := svc.ProcessStudentAnswer(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, res.Processed)
	assert.Len(t, uow.studentAnswerChunks.chunks, res.ChunkCount)
	for _, chunk := range uow.studentAnswerChunks.chunks {
		assert.Equal(t, id, chunk.StudentAnswerId)
		assert.Equal(t, entity.SourceStudentAnswer, chunk.Metadata.SourceType)
	}
	assert.True(t, uow.studentAnswers.processed)
}
