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

type StudentAnswerChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkMapper
}

func NewStudentAnswerChunkRepository(db *gorm.DB) contract.StudentAnswerChunkRepository {
	return &StudentAnswerChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkMapper(),
	}
}

func (r *StudentAnswerChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.StudentAnswerChunk) error {
	m := r.mapper.StudentAnswerChunkToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.StudentAnswerChunkToEntity(m)
	return nil
}

func (r *StudentAnswerChunkRepositoryImpl) DeleteByStudentAnswerId(ctx context.Context, studentAnswerId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("student_answer_id = ?", studentAnswerId).
		Delete(&model.StudentAnswerChunk{}).Error
}

func (r *StudentAnswerChunkRepositoryImpl) CountByStudentAnswerId(ctx context.Context, studentAnswerId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.StudentAnswerChunk{}).
		Where("student_answer_id = ?", studentAnswerId).
		Count(&count).Error
	return count, err
}

func (r *StudentAnswerChunkRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, studentAnswerId uuid.UUID, limit int) ([]*entity.RetrievedChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type row struct {
		model.StudentAnswerChunk
		Distance float64
	}
	var rows []row

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("student_answer_chunks").
		Select("student_answer_chunks.*, embedding <=> ? AS distance", queryVector).
		Where("student_answer_id = ?", studentAnswerId).
		Order("distance ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	retrieved := make([]*entity.RetrievedChunk, len(rows))
	for i, res := range rows {
		e := r.mapper.StudentAnswerChunkToEntity(&res.StudentAnswerChunk)
		retrieved[i] = &entity.RetrievedChunk{
			Content:  e.ContentChunk,
			Metadata: e.Metadata,
			Distance: res.Distance,
		}
	}
	return retrieved, nil
}
