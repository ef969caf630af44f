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

type AnswerKeyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewAnswerKeyRepository(db *gorm.DB) contract.AnswerKeyRepository {
	return &AnswerKeyRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *AnswerKeyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnswerKeyRepositoryImpl) Create(ctx context.Context, answerKey *entity.AnswerKey) error {
	m := r.mapper.AnswerKeyToModel(answerKey)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*answerKey = *r.mapper.AnswerKeyToEntity(m)
	return nil
}

func (r *AnswerKeyRepositoryImpl) Update(ctx context.Context, answerKey *entity.AnswerKey) error {
	m := r.mapper.AnswerKeyToModel(answerKey)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*answerKey = *r.mapper.AnswerKeyToEntity(m)
	return nil
}

func (r *AnswerKeyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AnswerKey{}, id).Error
}

func (r *AnswerKeyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnswerKey, error) {
	var m model.AnswerKey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AnswerKeyToEntity(&m), nil
}

func (r *AnswerKeyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnswerKey, error) {
	var models []*model.AnswerKey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AnswerKey, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AnswerKeyToEntity(m)
	}
	return entities, nil
}

// AcquireProcessingLease relies on a single conditional UPDATE so only one of
// any number of concurrent callers sees RowsAffected == 1.
func (r *AnswerKeyRepositoryImpl) AcquireProcessingLease(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.AnswerKey{}).
		Where("id = ? AND status <> ?", id, string(entity.StatusProcessing)).
		Update("status", string(entity.StatusProcessing))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *AnswerKeyRepositoryImpl) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AnswerKey{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processed":    true,
			"processed_at": at,
			"status":       string(entity.StatusProcessed),
		}).Error
}

func (r *AnswerKeyRepositoryImpl) ReleaseProcessingLease(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.AnswerKey{}).
		Where("id = ? AND status = ?", id, string(entity.StatusProcessing)).
		Update("status", string(entity.StatusUnprocessed)).Error
}
