package unitofwork

import (
	"context"

	"ai-grading-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AnswerKeyRepository() contract.AnswerKeyRepository
	StudentAnswerRepository() contract.StudentAnswerRepository
	AnswerKeyChunkRepository() contract.AnswerKeyChunkRepository
	StudentAnswerChunkRepository() contract.StudentAnswerChunkRepository
	AssessmentRepository() contract.AssessmentRepository
	UsageLogRepository() contract.UsageLogRepository

	TeacherRepository() contract.TeacherRepository
	ClassRepository() contract.ClassRepository
	StudentRepository() contract.StudentRepository
	TermRepository() contract.TermRepository
	SubjectRepository() contract.SubjectRepository
	FolderRepository() contract.FolderRepository
}
