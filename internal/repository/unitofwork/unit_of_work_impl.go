package unitofwork

import (
	"context"
	"fmt"

	"ai-grading-be/internal/repository/contract"
	"ai-grading-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository accessors

func (u *UnitOfWorkImpl) AnswerKeyRepository() contract.AnswerKeyRepository {
	return implementation.NewAnswerKeyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StudentAnswerRepository() contract.StudentAnswerRepository {
	return implementation.NewStudentAnswerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AnswerKeyChunkRepository() contract.AnswerKeyChunkRepository {
	return implementation.NewAnswerKeyChunkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StudentAnswerChunkRepository() contract.StudentAnswerChunkRepository {
	return implementation.NewStudentAnswerChunkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AssessmentRepository() contract.AssessmentRepository {
	return implementation.NewAssessmentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UsageLogRepository() contract.UsageLogRepository {
	return implementation.NewUsageLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TeacherRepository() contract.TeacherRepository {
	return implementation.NewTeacherRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ClassRepository() contract.ClassRepository {
	return implementation.NewClassRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StudentRepository() contract.StudentRepository {
	return implementation.NewStudentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TermRepository() contract.TermRepository {
	return implementation.NewTermRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubjectRepository() contract.SubjectRepository {
	return implementation.NewSubjectRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FolderRepository() contract.FolderRepository {
	return implementation.NewFolderRepository(u.getDB())
}
