package service

import (
	"context"
	"encoding/json"

	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the internal processing queue and feeds the indexer.
// It runs on its own goroutine with an isolated file logger so pipeline noise
// stays out of the request log.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	indexerService IIndexerService
	log            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	indexerService IIndexerService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		indexerService: indexerService,
		log:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProcessDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("consumer", "processing document", map[string]interface{}{
		"document_id": payload.DocumentId.String(),
		"source_type": payload.SourceType,
	})

	var processErr error
	switch payload.SourceType {
	case string(entity.SourceAnswerKey):
		_, processErr = cs.indexerService.ProcessAnswerKey(ctx, payload.DocumentId)
	case string(entity.SourceStudentAnswer):
		_, processErr = cs.indexerService.ProcessStudentAnswer(ctx, payload.DocumentId)
	default:
		cs.log.Error("consumer", "unknown source type", map[string]interface{}{
			"source_type": payload.SourceType,
		})
		msg.Ack()
		return
	}

	if processErr != nil {
		// Deleted documents and lost lease races are terminal for this
		// message; anything else is worth a retry.
		if apperror.IsNotFound(processErr) || apperror.IsConflict(processErr) {
			cs.log.Warn("consumer", "dropping message", map[string]interface{}{
				"document_id": payload.DocumentId.String(),
				"error":       processErr.Error(),
			})
			msg.Ack()
			return
		}
		cs.log.Error("consumer", "processing failed, will retry", map[string]interface{}{
			"document_id": payload.DocumentId.String(),
			"error":       processErr.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "document processed", map[string]interface{}{
		"document_id": payload.DocumentId.String(),
	})
	msg.Ack()
}
