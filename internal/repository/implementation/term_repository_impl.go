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

type TermRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrgMapper
}

func NewTermRepository(db *gorm.DB) contract.TermRepository {
	return &TermRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrgMapper(),
	}
}

func (r *TermRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TermRepositoryImpl) Create(ctx context.Context, term *entity.Term) error {
	m := r.mapper.TermToModel(term)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*term = *r.mapper.TermToEntity(m)
	return nil
}

func (r *TermRepositoryImpl) Update(ctx context.Context, term *entity.Term) error {
	m := r.mapper.TermToModel(term)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*term = *r.mapper.TermToEntity(m)
	return nil
}

func (r *TermRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Term{}, id).Error
}

func (r *TermRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Term, error) {
	var m model.Term
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TermToEntity(&m), nil
}

func (r *TermRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Term, error) {
	var models []*model.Term
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Term, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TermToEntity(m)
	}
	return entities, nil
}
