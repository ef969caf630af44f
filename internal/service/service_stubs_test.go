package service

import (
	"context"
	"time"

	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/repository/contract"
	"ai-grading-be/internal/repository/specification"
	"ai-grading-be/internal/repository/unitofwork"
	"ai-grading-be/pkg/embedding"
	"ai-grading-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory doubles shared by the service tests. They implement only what the
// services under test touch; anything else panics loudly.

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubEmbeddingProvider struct {
	vector []float32
	err    error
	calls  int
}

func (p *stubEmbeddingProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: p.vector},
	}, nil
}

type stubLLMProvider struct {
	output string
	err    error
}

func (p *stubLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.output, p.err
}

func (p *stubLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.output, p.err
}

func (p *stubLLMProvider) HealthCheck(ctx context.Context) error {
	return p.err
}

type fakeAnswerKeyRepo struct {
	answerKey *entity.AnswerKey
	leased    bool
	released  bool
	processed bool
	leaseErr  error
	markErr   error
}

func (r *fakeAnswerKeyRepo) Create(ctx context.Context, answerKey *entity.AnswerKey) error {
	r.answerKey = answerKey
	return nil
}

func (r *fakeAnswerKeyRepo) Update(ctx context.Context, answerKey *entity.AnswerKey) error {
	r.answerKey = answerKey
	return nil
}

func (r *fakeAnswerKeyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.answerKey = nil
	return nil
}

func (r *fakeAnswerKeyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnswerKey, error) {
	return r.answerKey, nil
}

func (r *fakeAnswerKeyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnswerKey, error) {
	if r.answerKey == nil {
		return nil, nil
	}
	return []*entity.AnswerKey{r.answerKey}, nil
}

func (r *fakeAnswerKeyRepo) AcquireProcessingLease(ctx context.Context, id uuid.UUID) (bool, error) {
	if r.leaseErr != nil {
		return false, r.leaseErr
	}
	if r.leased {
		return false, nil
	}
	r.leased = true
	return true, nil
}

func (r *fakeAnswerKeyRepo) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if r.markErr != nil {
		return r.markErr
	}
	r.processed = true
	r.leased = false
	return nil
}

func (r *fakeAnswerKeyRepo) ReleaseProcessingLease(ctx context.Context, id uuid.UUID) error {
	r.released = true
	r.leased = false
	return nil
}

type fakeStudentAnswerRepo struct {
	studentAnswer *entity.StudentAnswer
	leased        bool
	released      bool
	processed     bool
}

func (r *fakeStudentAnswerRepo) Create(ctx context.Context, studentAnswer *entity.StudentAnswer) error {
	r.studentAnswer = studentAnswer
	return nil
}

func (r *fakeStudentAnswerRepo) Update(ctx context.Context, studentAnswer *entity.StudentAnswer) error {
	r.studentAnswer = studentAnswer
	return nil
}

func (r *fakeStudentAnswerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.studentAnswer = nil
	return nil
}

func (r *fakeStudentAnswerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudentAnswer, error) {
	return r.studentAnswer, nil
}

func (r *fakeStudentAnswerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudentAnswer, error) {
	if r.studentAnswer == nil {
		return nil, nil
	}
	return []*entity.StudentAnswer{r.studentAnswer}, nil
}

func (r *fakeStudentAnswerRepo) AcquireProcessingLease(ctx context.Context, id uuid.UUID) (bool, error) {
	if r.leased {
		return false, nil
	}
	r.leased = true
	return true, nil
}

func (r *fakeStudentAnswerRepo) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.processed = true
	r.leased = false
	return nil
}

func (r *fakeStudentAnswerRepo) ReleaseProcessingLease(ctx context.Context, id uuid.UUID) error {
	r.released = true
	r.leased = false
	return nil
}

type fakeAnswerKeyChunkRepo struct {
	chunks    []*entity.AnswerKeyChunk
	hits      []*entity.RetrievedChunk
	searchErr error
	createErr error
}

func (r *fakeAnswerKeyChunkRepo) Create(ctx context.Context, chunk *entity.AnswerKeyChunk) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.chunks = append(r.chunks, chunk)
	return nil
}

func (r *fakeAnswerKeyChunkRepo) DeleteByAnswerKeyId(ctx context.Context, answerKeyId uuid.UUID) error {
	r.chunks = nil
	return nil
}

func (r *fakeAnswerKeyChunkRepo) CountByAnswerKeyId(ctx context.Context, answerKeyId uuid.UUID) (int64, error) {
	return int64(len(r.chunks)), nil
}

func (r *fakeAnswerKeyChunkRepo) SearchSimilar(ctx context.Context, vec []float32, answerKeyId uuid.UUID, limit int) ([]*entity.RetrievedChunk, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	return r.hits, nil
}

type fakeStudentAnswerChunkRepo struct {
	chunks []*entity.StudentAnswerChunk
}

func (r *fakeStudentAnswerChunkRepo) Create(ctx context.Context, chunk *entity.StudentAnswerChunk) error {
	r.chunks = append(r.chunks, chunk)
	return nil
}

func (r *fakeStudentAnswerChunkRepo) DeleteByStudentAnswerId(ctx context.Context, studentAnswerId uuid.UUID) error {
	r.chunks = nil
	return nil
}

func (r *fakeStudentAnswerChunkRepo) CountByStudentAnswerId(ctx context.Context, studentAnswerId uuid.UUID) (int64, error) {
	return int64(len(r.chunks)), nil
}

func (r *fakeStudentAnswerChunkRepo) SearchSimilar(ctx context.Context, vec []float32, studentAnswerId uuid.UUID, limit int) ([]*entity.RetrievedChunk, error) {
	return nil, nil
}

type fakeAssessmentRepo struct {
	assessments []*entity.Assessment
	createErr   error
}

func (r *fakeAssessmentRepo) Create(ctx context.Context, assessment *entity.Assessment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.assessments = append(r.assessments, assessment)
	return nil
}

func (r *fakeAssessmentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error) {
	if len(r.assessments) == 0 {
		return nil, nil
	}
	return r.assessments[0], nil
}

func (r *fakeAssessmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error) {
	return r.assessments, nil
}

func (r *fakeAssessmentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.assessments)), nil
}

func (r *fakeAssessmentRepo) Approve(ctx context.Context, id uuid.UUID, approvedBy uuid.UUID) (*entity.Assessment, error) {
	for _, a := range r.assessments {
		if a.Id == id {
			a.IsApproved = true
			a.ApprovedBy = &approvedBy
			return a, nil
		}
	}
	return nil, nil
}

type fakeUsageLogRepo struct {
	logs      []*entity.UsageLog
	createErr error
}

func (r *fakeUsageLogRepo) Create(ctx context.Context, usageLog *entity.UsageLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.logs = append(r.logs, usageLog)
	return nil
}

func (r *fakeUsageLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageLog, error) {
	return r.logs, nil
}

func (r *fakeUsageLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.logs)), nil
}

// fakeUnitOfWork hands out the fake repos; transaction demarcation is a
// recorded no-op.
type fakeUnitOfWork struct {
	answerKeys          *fakeAnswerKeyRepo
	studentAnswers      *fakeStudentAnswerRepo
	answerKeyChunks     *fakeAnswerKeyChunkRepo
	studentAnswerChunks *fakeStudentAnswerChunkRepo
	assessments         *fakeAssessmentRepo
	usageLogs           *fakeUsageLogRepo

	begun      bool
	committed  bool
	rolledBack bool
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		answerKeys:          &fakeAnswerKeyRepo{},
		studentAnswers:      &fakeStudentAnswerRepo{},
		answerKeyChunks:     &fakeAnswerKeyChunkRepo{},
		studentAnswerChunks: &fakeStudentAnswerChunkRepo{},
		assessments:         &fakeAssessmentRepo{},
		usageLogs:           &fakeUsageLogRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.begun = true; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.committed = true; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rolledBack = true; return nil }

func (u *fakeUnitOfWork) AnswerKeyRepository() contract.AnswerKeyRepository { return u.answerKeys }
func (u *fakeUnitOfWork) StudentAnswerRepository() contract.StudentAnswerRepository {
	return u.studentAnswers
}
func (u *fakeUnitOfWork) AnswerKeyChunkRepository() contract.AnswerKeyChunkRepository {
	return u.answerKeyChunks
}
func (u *fakeUnitOfWork) StudentAnswerChunkRepository() contract.StudentAnswerChunkRepository {
	return u.studentAnswerChunks
}
func (u *fakeUnitOfWork) AssessmentRepository() contract.AssessmentRepository { return u.assessments }
func (u *fakeUnitOfWork) UsageLogRepository() contract.UsageLogRepository     { return u.usageLogs }

func (u *fakeUnitOfWork) TeacherRepository() contract.TeacherRepository { panic("not wired in tests") }
func (u *fakeUnitOfWork) ClassRepository() contract.ClassRepository     { panic("not wired in tests") }
func (u *fakeUnitOfWork) StudentRepository() contract.StudentRepository { panic("not wired in tests") }
func (u *fakeUnitOfWork) TermRepository() contract.TermRepository       { panic("not wired in tests") }
func (u *fakeUnitOfWork) SubjectRepository() contract.SubjectRepository { panic("not wired in tests") }
func (u *fakeUnitOfWork) FolderRepository() contract.FolderRepository   { panic("not wired in tests") }

// fakeUowFactory hands out uow on every call; when cleanup is set, calls
// after the first get cleanup instead, so a test can tell whether code
// reached for a fresh unit of work or reused the first one.
type fakeUowFactory struct {
	uow     *fakeUnitOfWork
	cleanup *fakeUnitOfWork
	calls   int
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.calls++
	if f.calls > 1 && f.cleanup != nil {
		return f.cleanup
	}
	return f.uow
}
