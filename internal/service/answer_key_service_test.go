package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/pkg/filestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type stubIndexer struct {
	res *dto.ProcessDocumentResponse
	err error
}

func (s *stubIndexer) ProcessAnswerKey(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	return s.res, s.err
}

func (s *stubIndexer) ProcessStudentAnswer(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	return s.res, s.err
}

func answerKeyFixture(t *testing.T, uow *fakeUnitOfWork, pub *recordingPublisher) IAnswerKeyService {
	t.Helper()
	store, err := filestore.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return NewAnswerKeyService(&fakeUowFactory{uow: uow}, pub, &stubIndexer{}, store, noopLogger{})
}

func TestCreateAnswerKey(t *testing.T) {
	uow := newFakeUnitOfWork()
	pub := &recordingPublisher{}
	svc := answerKeyFixture(t, uow, pub)

	res, err := svc.Create(context.Background(), &dto.CreateAnswerKeyRequest{
		FileName:  "midterm_key.txt",
		Content:   "The mitochondria is the powerhouse of the cell.",
		SubjectId: uuid.New(),
		TermId:    uuid.New(),
	}, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.CollectionName, "answer_key_"))

	stored := uow.answerKeys.answerKey
	require.NotNil(t, stored)
	assert.Equal(t, res.Id, stored.Id)
	assert.Equal(t, entity.StatusUnprocessed, stored.Status)
	assert.False(t, stored.Processed)

	// Creation queues the document for async embedding.
	require.Len(t, pub.payloads, 1)
	var msg dto.ProcessDocumentMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, stored.Id, msg.DocumentId)
	assert.Equal(t, string(entity.SourceAnswerKey), msg.SourceType)
}

func TestCreateAnswerKeyStoresUploadedFile(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := answerKeyFixture(t, uow, &recordingPublisher{})

	fileData := []byte("uploaded bytes")
	_, err := svc.Create(context.Background(), &dto.CreateAnswerKeyRequest{
		FileName:  "scan.pdf",
		Content:   "extracted text",
		SubjectId: uuid.New(),
		TermId:    uuid.New(),
	}, fileData)
	require.NoError(t, err)

	stored := uow.answerKeys.answerKey
	assert.NotEmpty(t, stored.FilePath)
	assert.Equal(t, int64(len(fileData)), stored.FileSize)
}

func TestUpdateAnswerKeyQueuesReindexOnContentChange(t *testing.T) {
	uow := newFakeUnitOfWork()
	pub := &recordingPublisher{}
	svc := answerKeyFixture(t, uow, pub)

	id := uuid.New()
	processedAt := time.Now()
	uow.answerKeys.answerKey = &entity.AnswerKey{
		Id:          id,
		FileName:    "midterm_key.txt",
		Content:     "old version of the key",
		Processed:   true,
		ProcessedAt: &processedAt,
		Status:      entity.StatusProcessed,
	}

	res, err := svc.Update(context.Background(), &dto.UpdateAnswerKeyRequest{
		Id:      id,
		Content: "revised version of the key",
	})
	require.NoError(t, err)

	assert.Equal(t, "revised version of the key", res.Content)
	assert.False(t, res.Processed)

	stored := uow.answerKeys.answerKey
	assert.Equal(t, entity.StatusUnprocessed, stored.Status)
	assert.Nil(t, stored.ProcessedAt)

	// The content change queues a re-embedding run.
	require.Len(t, pub.payloads, 1)
	var msg dto.ProcessDocumentMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, id, msg.DocumentId)
	assert.Equal(t, string(entity.SourceAnswerKey), msg.SourceType)
}

func TestUpdateAnswerKeySkipsReindexWhenContentUnchanged(t *testing.T) {
	uow := newFakeUnitOfWork()
	pub := &recordingPublisher{}
	svc := answerKeyFixture(t, uow, pub)

	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{
		Id:        id,
		FileName:  "midterm_key.txt",
		Content:   "stable content",
		Processed: true,
		Status:    entity.StatusProcessed,
	}

	res, err := svc.Update(context.Background(), &dto.UpdateAnswerKeyRequest{
		Id:       id,
		FileName: "renamed_key.txt",
	})
	require.NoError(t, err)

	assert.Equal(t, "renamed_key.txt", res.FileName)
	assert.True(t, res.Processed, "a rename alone must not invalidate the index")
	assert.Empty(t, pub.payloads)
}

func TestUpdateAnswerKeySurvivesQueueFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	pub := &recordingPublisher{err: errors.New("bus down")}
	svc := answerKeyFixture(t, uow, pub)

	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{Id: id, Content: "old"}

	res, err := svc.Update(context.Background(), &dto.UpdateAnswerKeyRequest{Id: id, Content: "new"})
	require.NoError(t, err, "the update stands even when queueing the re-index fails")
	assert.Equal(t, "new", res.Content)
}

func TestUpdateAnswerKeyNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := answerKeyFixture(t, uow, &recordingPublisher{})

	_, err := svc.Update(context.Background(), &dto.UpdateAnswerKeyRequest{Id: uuid.New(), Content: "x"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestShowAnswerKeyNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := answerKeyFixture(t, uow, &recordingPublisher{})

	_, err := svc.Show(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteAnswerKeyRemovesChunksInSameTransaction(t *testing.T) {
	uow := newFakeUnitOfWork()
	id := uuid.New()
	uow.answerKeys.answerKey = &entity.AnswerKey{Id: id, Content: "content"}
	uow.answerKeyChunks.chunks = []*entity.AnswerKeyChunk{{AnswerKeyId: id}}

	svc := answerKeyFixture(t, uow, &recordingPublisher{})

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Nil(t, uow.answerKeys.answerKey)
	assert.Empty(t, uow.answerKeyChunks.chunks)
	assert.True(t, uow.begun)
	assert.True(t, uow.committed)
}
