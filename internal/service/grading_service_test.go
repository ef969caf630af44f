package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-grading-be/internal/config"
	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRetriever struct {
	hits []*entity.RetrievedChunk
}

func (r *stubRetriever) RetrieveRelevantChunks(ctx context.Context, queryText string, answerKeyId uuid.UUID, topK int) []*entity.RetrievedChunk {
	return r.hits
}

// capturingLLMProvider records the last prompt it was handed.
type capturingLLMProvider struct {
	prompt string
	output string
}

func (p *capturingLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.output, nil
}

func (p *capturingLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.prompt = prompt
	return p.output, nil
}

func (p *capturingLLMProvider) HealthCheck(ctx context.Context) error { return nil }

func gradingFixture(uow *fakeUnitOfWork, llmOutput string, llmErr error, hits []*entity.RetrievedChunk) IGradingService {
	return NewGradingService(
		&fakeUowFactory{uow: uow},
		&stubRetriever{hits: hits},
		&stubLLMProvider{output: llmOutput, err: llmErr},
		nil,
		config.AIConfig{Temperature: 0.3, MaxTokens: 2048, RetrievalTopK: 5},
		noopLogger{},
	)
}

func seedDocuments(uow *fakeUnitOfWork) (studentAnswerId, answerKeyId uuid.UUID) {
	studentAnswerId = uuid.New()
	answerKeyId = uuid.New()
	uow.studentAnswers.studentAnswer = &entity.StudentAnswer{
		Id:      studentAnswerId,
		Content: "Photosynthesis converts light into chemical energy.",
	}
	uow.answerKeys.answerKey = &entity.AnswerKey{
		Id:      answerKeyId,
		Content: "Photosynthesis converts light energy into glucose in chloroplasts.",
	}
	return studentAnswerId, answerKeyId
}

func TestAnalyzeStudentAnswer(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	hits := []*entity.RetrievedChunk{
		{Content: "Photosynthesis converts light energy", Distance: 0.1},
		{Content: "into glucose in chloroplasts", Distance: 0.2},
	}
	svc := gradingFixture(uow, `{"score": 7.5, "feedback": "Solid answer, missing the organelle.", "confidence": 85}`, nil, hits)

	res, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.NoError(t, err)

	assert.Equal(t, 7.5, res.Score)
	assert.Equal(t, float64(10), res.MaxScore)
	assert.Equal(t, "Solid answer, missing the organelle.", res.Feedback)
	assert.Equal(t, float64(85), res.Confidence)

	require.Len(t, uow.assessments.assessments, 1)
	stored := uow.assessments.assessments[0]
	assert.Equal(t, res.AssessmentId, stored.Id)
	assert.Equal(t, studentAnswerId, stored.StudentAnswerId)
	assert.Equal(t, answerKeyId, stored.AnswerKeyId)
	assert.False(t, stored.IsApproved)
	assert.Equal(t, "Solid answer, missing the organelle.", stored.FeedbackJson["detail"])

	require.Len(t, uow.usageLogs.logs, 1)
	logged := uow.usageLogs.logs[0]
	assert.Equal(t, entity.OperationAnalyzeAnswer, logged.OperationType)
	assert.Equal(t, stored.Id.String(), logged.AssessmentId)
	assert.Greater(t, logged.TokenCount, 0)
}

func TestAnalyzeStudentAnswerTolerantOfCodeFences(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	svc := gradingFixture(uow, "```json\n{\"score\": 9, \"feedback\": \"ok\", \"confidence\": 90}\n```", nil, nil)

	res, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(9), res.Score)
}

func TestAnalyzeStudentAnswerFallsBackToRawKeyContent(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	provider := &capturingLLMProvider{output: `{"score": 6, "feedback": "ok", "confidence": 70}`}
	svc := NewGradingService(
		&fakeUowFactory{uow: uow},
		&stubRetriever{hits: nil},
		provider,
		nil,
		config.AIConfig{Temperature: 0.3, MaxTokens: 2048, RetrievalTopK: 5},
		noopLogger{},
	)

	_, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.NoError(t, err)

	// With nothing retrieved the prompt carries the full answer-key text.
	assert.Contains(t, provider.prompt, uow.answerKeys.answerKey.Content)
}

func TestAnalyzeStudentAnswerClampsScoreToScale(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	svc := gradingFixture(uow, `{"score": 42, "feedback": "generous", "confidence": 90}`, nil, nil)

	res, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(10), res.Score)
	require.Len(t, uow.assessments.assessments, 1)
	stored := uow.assessments.assessments[0]
	assert.LessOrEqual(t, stored.Score, stored.MaxScore)
}

func TestAnalyzeStudentAnswerRejectsOutOfRangeConfidence(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	svc := gradingFixture(uow, `{"score": 7, "feedback": "ok", "confidence": 900}`, nil, nil)

	_, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidModelOutput(err))
	assert.Empty(t, uow.assessments.assessments)
}

func TestAnalyzeStudentAnswerNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := gradingFixture(uow, "", nil, nil)

	_, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: uuid.New(),
		AnswerKeyId:     uuid.New(),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAnalyzeStudentAnswerUpstreamFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	svc := gradingFixture(uow, "", errors.New("connection refused"), nil)

	_, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsUpstream(err))
	assert.Empty(t, uow.assessments.assessments)
}

func TestAnalyzeStudentAnswerInvalidModelOutput(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	svc := gradingFixture(uow, "The student did quite well, I'd give a 7.", nil, nil)

	_, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidModelOutput(err))
	assert.Empty(t, uow.assessments.assessments)
}

func TestAnalyzeStudentAnswerSurvivesUsageLogFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)
	uow.usageLogs.createErr = errors.New("audit table gone")

	svc := gradingFixture(uow, `{"score": 6, "feedback": "fine", "confidence": 70}`, nil, nil)

	res, err := svc.AnalyzeStudentAnswer(context.Background(), &dto.AnalyzeAnswerRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(6), res.Score)
}

func TestEstimateTokenCountCountsRunes(t *testing.T) {
	assert.Equal(t, 2, estimateTokenCount("12345678"))
	// 10 runes regardless of UTF-8 byte width.
	assert.Equal(t, 3, estimateTokenCount("สวัสดีครับ"))
	assert.Equal(t, 0, estimateTokenCount(""))
}

func TestCompareAnswers(t *testing.T) {
	uow := newFakeUnitOfWork()
	studentAnswerId, answerKeyId := seedDocuments(uow)

	output := `{"correct_points": ["light energy"], "incorrect_points": [], "missing_points": ["chloroplasts"], "suggestions": "Mention where it happens."}`
	svc := gradingFixture(uow, output, nil, nil)

	res, err := svc.CompareAnswers(context.Background(), &dto.CompareAnswersRequest{
		StudentAnswerId: studentAnswerId,
		AnswerKeyId:     answerKeyId,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"light energy"}, res.CorrectPoints)
	assert.Empty(t, res.IncorrectPoints)
	assert.Equal(t, []string{"chloroplasts"}, res.MissingPoints)
	assert.Equal(t, "Mention where it happens.", res.Suggestions)

	// Comparison never writes an assessment, only the audit record.
	assert.Empty(t, uow.assessments.assessments)
	require.Len(t, uow.usageLogs.logs, 1)
	logged := uow.usageLogs.logs[0]
	assert.Equal(t, entity.OperationCompareAnswers, logged.OperationType)
	assert.Equal(t, entity.UsageLogNoAssessment, logged.AssessmentId)
	assert.Equal(t, float64(100), logged.Confidence)
	assert.WithinDuration(t, time.Now(), logged.CreatedAt, time.Minute)
}
