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

type AssessmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewAssessmentRepository(db *gorm.DB) contract.AssessmentRepository {
	return &AssessmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *AssessmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssessmentRepositoryImpl) Create(ctx context.Context, assessment *entity.Assessment) error {
	m := r.mapper.ToModel(assessment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*assessment = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssessmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error) {
	var m model.Assessment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AssessmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error) {
	var models []*model.Assessment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Assessment, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AssessmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Assessment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AssessmentRepositoryImpl) Approve(ctx context.Context, id uuid.UUID, approvedBy uuid.UUID) (*entity.Assessment, error) {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&model.Assessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_approved": true,
			"approved_by": approvedBy,
			"updated_at":  now,
		}).Error
	if err != nil {
		return nil, err
	}

	var m model.Assessment
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
