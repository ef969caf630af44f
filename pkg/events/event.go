package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ANSWER_KEY_UPLOADED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeAnswerKeyUploaded     = "ANSWER_KEY_UPLOADED"
	TypeStudentAnswerUploaded = "STUDENT_ANSWER_UPLOADED"
	TypeDocumentProcessed     = "DOCUMENT_PROCESSED"
	TypeAssessmentCreated     = "ASSESSMENT_CREATED"
)

// BaseEvent is the generic implementation every publisher uses.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewAnswerKeyUploaded(answerKeyId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeAnswerKeyUploaded,
		Data: map[string]interface{}{
			"answer_key_id": answerKeyId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewStudentAnswerUploaded(studentAnswerId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeStudentAnswerUploaded,
		Data: map[string]interface{}{
			"student_answer_id": studentAnswerId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentProcessed(documentId uuid.UUID, sourceType string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeDocumentProcessed,
		Data: map[string]interface{}{
			"document_id": documentId.String(),
			"source_type": sourceType,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewAssessmentCreated(assessmentId uuid.UUID, score float64) Event {
	return BaseEvent{
		Type: TypeAssessmentCreated,
		Data: map[string]interface{}{
			"assessment_id": assessmentId.String(),
			"score":         score,
		},
		OccurredAt: time.Now(),
	}
}
