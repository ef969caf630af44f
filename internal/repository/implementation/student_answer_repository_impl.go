package implementation

import (
	"context"
	"errors"
	"time"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/mapper"
	"ai-grading-be/internal/model"
	"ai-grading-be/internal/repository/contract"
	"ai-grading-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentAnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewStudentAnswerRepository(db *gorm.DB) contract.StudentAnswerRepository {
	return &StudentAnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *StudentAnswerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StudentAnswerRepositoryImpl) Create(ctx context.Context, studentAnswer *entity.StudentAnswer) error {
	m := r.mapper.StudentAnswerToModel(studentAnswer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*studentAnswer = *r.mapper.StudentAnswerToEntity(m)
	return nil
}

func (r *StudentAnswerRepositoryImpl) Update(ctx context.Context, studentAnswer *entity.StudentAnswer) error {
	m := r.mapper.StudentAnswerToModel(studentAnswer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*studentAnswer = *r.mapper.StudentAnswerToEntity(m)
	return nil
}

func (r *StudentAnswerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StudentAnswer{}, id).Error
}

func (r *StudentAnswerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudentAnswer, error) {
	var m model.StudentAnswer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StudentAnswerToEntity(&m), nil
}

func (r *StudentAnswerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudentAnswer, error) {
	var models []*model.StudentAnswer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.StudentAnswer, len(models))
	for i, m := range models {
		entities[i] = r.mapper.StudentAnswerToEntity(m)
	}
	return entities, nil
}

func (r *StudentAnswerRepositoryImpl) AcquireProcessingLease(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.StudentAnswer{}).
		Where("id = ? AND status <> ?", id, string(entity.StatusProcessing)).
		Update("status", string(entity.StatusProcessing))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *StudentAnswerRepositoryImpl) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.StudentAnswer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processed":    true,
			"processed_at": at,
			"status":       string(entity.StatusProcessed),
		}).Error
}

func (r *StudentAnswerRepositoryImpl) ReleaseProcessingLease(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.StudentAnswer{}).
		Where("id = ? AND status = ?", id, string(entity.StatusProcessing)).
		Update("status", string(entity.StatusUnprocessed)).Error
}
