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

type SubjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrgMapper
}

func NewSubjectRepository(db *gorm.DB) contract.SubjectRepository {
	return &SubjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrgMapper(),
	}
}

func (r *SubjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubjectRepositoryImpl) Create(ctx context.Context, subject *entity.Subject) error {
	m := r.mapper.SubjectToModel(subject)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subject = *r.mapper.SubjectToEntity(m)
	return nil
}

func (r *SubjectRepositoryImpl) Update(ctx context.Context, subject *entity.Subject) error {
	m := r.mapper.SubjectToModel(subject)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subject = *r.mapper.SubjectToEntity(m)
	return nil
}

func (r *SubjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Subject{}, id).Error
}

func (r *SubjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error) {
	var m model.Subject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubjectToEntity(&m), nil
}

func (r *SubjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error) {
	var models []*model.Subject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subject, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SubjectToEntity(m)
	}
	return entities, nil
}
