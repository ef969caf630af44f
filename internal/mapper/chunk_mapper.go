package mapper

import (
	"encoding/json"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func marshalChunkMetadata(m entity.ChunkMetadata) datatypes.JSON {
	raw, err := json.Marshal(m)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

func unmarshalChunkMetadata(raw datatypes.JSON) entity.ChunkMetadata {
	var m entity.ChunkMetadata
	// Ignore malformed metadata, it is descriptive only.
	_ = json.Unmarshal(raw, &m)
	return m
}

func (m *ChunkMapper) AnswerKeyChunkToModel(e *entity.AnswerKeyChunk) *model.AnswerKeyChunk {
	if e == nil {
		return nil
	}
	return &model.AnswerKeyChunk{
		Id:           e.Id,
		AnswerKeyId:  e.AnswerKeyId,
		ChunkIndex:   e.ChunkIndex,
		ContentChunk: e.ContentChunk,
		Embedding:    pgvector.NewVector(e.Embedding),
		Metadata:     marshalChunkMetadata(e.Metadata),
		CreatedAt:    e.CreatedAt,
	}
}

func (m *ChunkMapper) AnswerKeyChunkToEntity(e *model.AnswerKeyChunk) *entity.AnswerKeyChunk {
	if e == nil {
		return nil
	}
	return &entity.AnswerKeyChunk{
		Id:           e.Id,
		AnswerKeyId:  e.AnswerKeyId,
		ChunkIndex:   e.ChunkIndex,
		ContentChunk: e.ContentChunk,
		Embedding:    e.Embedding.Slice(),
		Metadata:     unmarshalChunkMetadata(e.Metadata),
		CreatedAt:    e.CreatedAt,
	}
}

func (m *ChunkMapper) StudentAnswerChunkToModel(e *entity.StudentAnswerChunk) *model.StudentAnswerChunk {
	if e == nil {
		return nil
	}
	return &model.StudentAnswerChunk{
		Id:              e.Id,
		StudentAnswerId: e.StudentAnswerId,
		ChunkIndex:      e.ChunkIndex,
		ContentChunk:    e.ContentChunk,
		Embedding:       pgvector.NewVector(e.Embedding),
		Metadata:        marshalChunkMetadata(e.Metadata),
		CreatedAt:       e.CreatedAt,
	}
}

func (m *ChunkMapper) StudentAnswerChunkToEntity(e *model.StudentAnswerChunk) *entity.StudentAnswerChunk {
	if e == nil {
		return nil
	}
	return &entity.StudentAnswerChunk{
		Id:              e.Id,
		StudentAnswerId: e.StudentAnswerId,
		ChunkIndex:      e.ChunkIndex,
		ContentChunk:    e.ContentChunk,
		Embedding:       e.Embedding.Slice(),
		Metadata:        unmarshalChunkMetadata(e.Metadata),
		CreatedAt:       e.CreatedAt,
	}
}
