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

type StudentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrgMapper
}

func NewStudentRepository(db *gorm.DB) contract.StudentRepository {
	return &StudentRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrgMapper(),
	}
}

func (r *StudentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StudentRepositoryImpl) Create(ctx context.Context, student *entity.Student) error {
	m := r.mapper.StudentToModel(student)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*student = *r.mapper.StudentToEntity(m)
	return nil
}

func (r *StudentRepositoryImpl) Update(ctx context.Context, student *entity.Student) error {
	m := r.mapper.StudentToModel(student)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*student = *r.mapper.StudentToEntity(m)
	return nil
}

func (r *StudentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

func (r *StudentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error) {
	var m model.Student
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StudentToEntity(&m), nil
}

func (r *StudentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error) {
	var models []*model.Student
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Student, len(models))
	for i, m := range models {
		entities[i] = r.mapper.StudentToEntity(m)
	}
	return entities, nil
}
