package implementation

import (
	"context"
	"errors"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/mapper"
	"ai-grading-be/internal/model"
	"ai-grading-be/internal/repository/contract"
	"ai-grading-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrgMapper
}

func NewClassRepository(db *gorm.DB) contract.ClassRepository {
	return &ClassRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrgMapper(),
	}
}

func (r *ClassRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClassRepositoryImpl) Create(ctx context.Context, class *entity.Class) error {
	m := r.mapper.ClassToModel(class)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*class = *r.mapper.ClassToEntity(m)
	return nil
}

func (r *ClassRepositoryImpl) Update(ctx context.Context, class *entity.Class) error {
	m := r.mapper.ClassToModel(class)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*class = *r.mapper.ClassToEntity(m)
	return nil
}

func (r *ClassRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Class{}, id).Error
}

func (r *ClassRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Class, error) {
	var m model.Class
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ClassToEntity(&m), nil
}

func (r *ClassRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Class, error) {
	var models []*model.Class
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Class, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ClassToEntity(m)
	}
	return entities, nil
}
