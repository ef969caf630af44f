package contract

import (
	"context"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/specification"

	"github.com/google/uuid"
)

// Plain CRUD over the organizational records. No algorithmic content here;
// these exist so documents and assessments have something to hang off.

type TeacherRepository interface {
	Create(ctx context.Context, teacher *entity.Teacher) error
	Update(ctx context.Context, teacher *entity.Teacher) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Teacher, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Teacher, error)
}

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	Update(ctx context.Context, class *entity.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Class, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Class, error)
}

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error)
}

type TermRepository interface {
	Create(ctx context.Context, term *entity.Term) error
	Update(ctx context.Context, term *entity.Term) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Term, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Term, error)
}

type SubjectRepository interface {
	Create(ctx context.Context, subject *entity.Subject) error
	Update(ctx context.Context, subject *entity.Subject) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error)
}

type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	Update(ctx context.Context, folder *entity.Folder) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error)
}
