package implementation

import (
	"context"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/mapper"
	"ai-grading-be/internal/model"
	"ai-grading-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type AnswerKeyChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkMapper
}

func NewAnswerKeyChunkRepository(db *gorm.DB) contract.AnswerKeyChunkRepository {
	return &AnswerKeyChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkMapper(),
	}
}

func (r *AnswerKeyChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.AnswerKeyChunk) error {
	m := r.mapper.AnswerKeyChunkToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.AnswerKeyChunkToEntity(m)
	return nil
}

func (r *AnswerKeyChunkRepositoryImpl) DeleteByAnswerKeyId(ctx context.Context, answerKeyId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("answer_key_id = ?", answerKeyId).
		Delete(&model.AnswerKeyChunk{}).Error
}

func (r *AnswerKeyChunkRepositoryImpl) CountByAnswerKeyId(ctx context.Context, answerKeyId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AnswerKeyChunk{}).
		Where("answer_key_id = ?", answerKeyId).
		Count(&count).Error
	return count, err
}

// SearchSimilar runs a cosine-distance nearest-neighbour query scoped to one
// answer key. The owner filter is not optional: dropping it would let a query
// surface chunks from unrelated documents.
func (r *AnswerKeyChunkRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, answerKeyId uuid.UUID, limit int) ([]*entity.RetrievedChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type row struct {
		model.AnswerKeyChunk
		Distance float64
	}
	var rows []row

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("answer_key_chunks").
		Select("answer_key_chunks.*, embedding <=> ? AS distance", queryVector).
		Where("answer_key_id = ?", answerKeyId).
		Order("distance ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	retrieved := make([]*entity.RetrievedChunk, len(rows))
	for i, res := range rows {
		e := r.mapper.AnswerKeyChunkToEntity(&res.AnswerKeyChunk)
		retrieved[i] = &entity.RetrievedChunk{
			Content:  e.ContentChunk,
			Metadata: e.Metadata,
			Distance: res.Distance,
		}
	}
	return retrieved, nil
}
