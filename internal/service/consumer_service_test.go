package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingIndexer struct {
	mu             sync.Mutex
	answerKeys     []uuid.UUID
	studentAnswers []uuid.UUID
}

func (s *countingIndexer) ProcessAnswerKey(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answerKeys = append(s.answerKeys, id)
	return &dto.ProcessDocumentResponse{Id: id, Processed: true}, nil
}

func (s *countingIndexer) ProcessStudentAnswer(ctx context.Context, id uuid.UUID) (*dto.ProcessDocumentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studentAnswers = append(s.studentAnswers, id)
	return &dto.ProcessDocumentResponse{Id: id, Processed: true}, nil
}

func (s *countingIndexer) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answerKeys), len(s.studentAnswers)
}

func TestConsumerRoutesMessagesBySourceType(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	indexer := &countingIndexer{}
	topic := "test-embed-topic"

	consumer := NewConsumerService(pubSub, topic, indexer, noopLogger{})
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService(pubSub, topic)

	answerKeyId := uuid.New()
	studentAnswerId := uuid.New()

	akMsg, _ := json.Marshal(dto.ProcessDocumentMessage{DocumentId: answerKeyId, SourceType: string(entity.SourceAnswerKey)})
	saMsg, _ := json.Marshal(dto.ProcessDocumentMessage{DocumentId: studentAnswerId, SourceType: string(entity.SourceStudentAnswer)})

	require.NoError(t, publisher.Publish(context.Background(), akMsg))
	require.NoError(t, publisher.Publish(context.Background(), saMsg))

	require.Eventually(t, func() bool {
		ak, sa := indexer.counts()
		return ak == 1 && sa == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, answerKeyId, indexer.answerKeys[0])
	assert.Equal(t, studentAnswerId, indexer.studentAnswers[0])
}

func TestConsumerDropsGarbageAndUnknownSource(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	indexer := &countingIndexer{}
	topic := "test-embed-topic"

	consumer := NewConsumerService(pubSub, topic, indexer, noopLogger{})
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService(pubSub, topic)

	require.NoError(t, publisher.Publish(context.Background(), []byte("not json")))
	unknown, _ := json.Marshal(dto.ProcessDocumentMessage{DocumentId: uuid.New(), SourceType: "mystery"})
	require.NoError(t, publisher.Publish(context.Background(), unknown))

	// A valid message after the garbage proves the stream keeps flowing.
	valid, _ := json.Marshal(dto.ProcessDocumentMessage{DocumentId: uuid.New(), SourceType: string(entity.SourceAnswerKey)})
	require.NoError(t, publisher.Publish(context.Background(), valid))

	require.Eventually(t, func() bool {
		ak, _ := indexer.counts()
		return ak == 1
	}, 2*time.Second, 10*time.Millisecond)

	ak, sa := indexer.counts()
	assert.Equal(t, 1, ak)
	assert.Equal(t, 0, sa)
}
