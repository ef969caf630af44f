package service

import (
	"context"
	"encoding/json"
	"testing"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/pkg/filestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studentAnswerFixture(t *testing.T, uow *fakeUnitOfWork, pub *recordingPublisher) IStudentAnswerService {
	t.Helper()
	store, err := filestore.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return NewStudentAnswerService(&fakeUowFactory{uow: uow}, pub, &stubIndexer{}, store, noopLogger{})
}

func TestCreateStudentAnswerRequiresAnswerKey(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := studentAnswerFixture(t, uow, &recordingPublisher{})

	_, err := svc.Create(context.Background(), &dto.CreateStudentAnswerRequest{
		FileName:    "answer.txt",
		Content:     "my answer",
		StudentId:   uuid.New(),
		AnswerKeyId: uuid.New(),
		FolderId:    uuid.New(),
	}, nil)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateStudentAnswerQueuesReindexOnContentChange(t *testing.T) {
	uow := newFakeUnitOfWork()
	pub := &recordingPublisher{}
	svc := studentAnswerFixture(t, uow, pub)

	id := uuid.New()
	uow.studentAnswers.studentAnswer = &entity.StudentAnswer{
		Id:        id,
		Content:   "first draft",
		Processed: true,
		Status:    entity.StatusProcessed,
	}

	res, err := svc.Update(context.Background(), &dto.UpdateStudentAnswerRequest{
		Id:      id,
		Content: "second draft",
	})
	require.NoError(t, err)

	assert.Equal(t, "second draft", res.Content)
	assert.False(t, res.Processed)
	assert.Equal(t, entity.StatusUnprocessed, uow.studentAnswers.studentAnswer.Status)

	require.Len(t, pub.payloads, 1)
	var msg dto.ProcessDocumentMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, id, msg.DocumentId)
	assert.Equal(t, string(entity.SourceStudentAnswer), msg.SourceType)
}

func TestUpdateStudentAnswerSkipsReindexWhenContentUnchanged(t *testing.T) {
	uow := newFakeUnitOfWork()
	pub := &recordingPublisher{}
	svc := studentAnswerFixture(t, uow, pub)

	id := uuid.New()
	uow.studentAnswers.studentAnswer = &entity.StudentAnswer{
		Id:        id,
		FileName:  "answer.txt",
		Content:   "stable",
		Processed: true,
		Status:    entity.StatusProcessed,
	}

	res, err := svc.Update(context.Background(), &dto.UpdateStudentAnswerRequest{
		Id:       id,
		FileName: "renamed.txt",
	})
	require.NoError(t, err)

	assert.Equal(t, "renamed.txt", res.FileName)
	assert.True(t, res.Processed)
	assert.Empty(t, pub.payloads)
}

func TestUpdateStudentAnswerNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := studentAnswerFixture(t, uow, &recordingPublisher{})

	_, err := svc.Update(context.Background(), &dto.UpdateStudentAnswerRequest{Id: uuid.New(), Content: "x"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
