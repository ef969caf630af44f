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

type TeacherRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrgMapper
}

func NewTeacherRepository(db *gorm.DB) contract.TeacherRepository {
	return &TeacherRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrgMapper(),
	}
}

func (r *TeacherRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TeacherRepositoryImpl) Create(ctx context.Context, teacher *entity.Teacher) error {
	m := r.mapper.TeacherToModel(teacher)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*teacher = *r.mapper.TeacherToEntity(m)
	return nil
}

func (r *TeacherRepositoryImpl) Update(ctx context.Context, teacher *entity.Teacher) error {
	m := r.mapper.TeacherToModel(teacher)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*teacher = *r.mapper.TeacherToEntity(m)
	return nil
}

func (r *TeacherRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, id).Error
}

func (r *TeacherRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Teacher, error) {
	var m model.Teacher
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TeacherToEntity(&m), nil
}

func (r *TeacherRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Teacher, error) {
	var models []*model.Teacher
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Teacher, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TeacherToEntity(m)
	}
	return entities, nil
}
