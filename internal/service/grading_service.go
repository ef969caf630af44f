package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"ai-grading-be/internal/config"
	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/pkg/apperror"
	"ai-grading-be/internal/pkg/logger"
	"ai-grading-be/internal/repository/specification"
	"ai-grading-be/internal/repository/unitofwork"
	"ai-grading-be/pkg/events"
	"ai-grading-be/pkg/grading/prompt"
	"ai-grading-be/pkg/grading/verdict"
	"ai-grading-be/pkg/llm"
	pkgNats "ai-grading-be/pkg/nats"

	"github.com/google/uuid"
)

// assessmentMaxScore is the grading scale ceiling the score prompt demands.
const assessmentMaxScore = 10

// IGradingService orchestrates the two model-backed operations: scoring a
// student answer against its answer key, and producing a point-by-point
// comparison.
type IGradingService interface {
	AnalyzeStudentAnswer(ctx context.Context, req *dto.AnalyzeAnswerRequest) (*dto.AnalyzeAnswerResponse, error)
	CompareAnswers(ctx context.Context, req *dto.CompareAnswersRequest) (*dto.CompareAnswersResponse, error)
}

type gradingService struct {
	uowFactory     unitofwork.RepositoryFactory
	retriever      IRetrieverService
	llmProvider    llm.LLMProvider
	eventPublisher *pkgNats.Publisher
	aiCfg          config.AIConfig
	log            logger.ILogger
}

func NewGradingService(
	uowFactory unitofwork.RepositoryFactory,
	retriever IRetrieverService,
	llmProvider llm.LLMProvider,
	eventPublisher *pkgNats.Publisher,
	aiCfg config.AIConfig,
	log logger.ILogger,
) IGradingService {
	return &gradingService{
		uowFactory:     uowFactory,
		retriever:      retriever,
		llmProvider:    llmProvider,
		eventPublisher: eventPublisher,
		aiCfg:          aiCfg,
		log:            log,
	}
}

func (s *gradingService) AnalyzeStudentAnswer(ctx context.Context, req *dto.AnalyzeAnswerRequest) (*dto.AnalyzeAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	studentAnswer, err := uow.StudentAnswerRepository().FindOne(ctx, specification.ByID{ID: req.StudentAnswerId})
	if err != nil {
		return nil, err
	}
	if studentAnswer == nil {
		return nil, apperror.NotFound(fmt.Sprintf("student answer %s", req.StudentAnswerId))
	}

	answerKey, err := uow.AnswerKeyRepository().FindOne(ctx, specification.ByID{ID: req.AnswerKeyId})
	if err != nil {
		return nil, err
	}
	if answerKey == nil {
		return nil, apperror.NotFound(fmt.Sprintf("answer key %s", req.AnswerKeyId))
	}

	// Retrieval degrades to the raw answer-key content; the model always
	// grades against something, just without the focused context.
	retrieved := s.retriever.RetrieveRelevantChunks(ctx, studentAnswer.Content, answerKey.Id, s.aiCfg.RetrievalTopK)
	keyContext := answerKey.Content
	if len(retrieved) > 0 {
		parts := make([]string, len(retrieved))
		for i, chunk := range retrieved {
			parts[i] = chunk.Content
		}
		keyContext = strings.Join(parts, "\n")
	}

	promptText, err := prompt.RenderScore(prompt.Data{
		AnswerKey:     keyContext,
		StudentAnswer: studentAnswer.Content,
	})
	if err != nil {
		return nil, err
	}

	started := time.Now()
	output, err := s.llmProvider.Generate(ctx, promptText,
		llm.WithTemperature(s.aiCfg.Temperature),
		llm.WithMaxTokens(s.aiCfg.MaxTokens),
	)
	if err != nil {
		return nil, apperror.Upstream("score generation", err)
	}
	elapsed := time.Since(started).Seconds()

	scoreVerdict, err := verdict.ParseScore(output, assessmentMaxScore)
	if err != nil {
		return nil, apperror.InvalidModelOutput(err.Error())
	}

	now := time.Now()
	assessment := entity.Assessment{
		Id:              uuid.New(),
		StudentAnswerId: studentAnswer.Id,
		AnswerKeyId:     answerKey.Id,
		Score:           scoreVerdict.Score,
		MaxScore:        assessmentMaxScore,
		FeedbackText:    scoreVerdict.Feedback,
		FeedbackJson:    map[string]interface{}{"detail": scoreVerdict.Feedback},
		Confidence:      scoreVerdict.Confidence,
		IsApproved:      false,
		AssessmentDate:  now,
		CreatedAt:       now,
	}
	if err := uow.AssessmentRepository().Create(ctx, &assessment); err != nil {
		return nil, err
	}

	s.logUsage(ctx, uow, assessment.Id.String(), entity.OperationAnalyzeAnswer, promptText, output, elapsed, scoreVerdict.Confidence)

	if s.eventPublisher != nil {
		evt := events.NewAssessmentCreated(assessment.Id, assessment.Score)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("grading", "failed to publish assessment created event", map[string]interface{}{
				"assessment_id": assessment.Id.String(),
				"error":         err.Error(),
			})
		}
	}

	return &dto.AnalyzeAnswerResponse{
		AssessmentId: assessment.Id,
		Score:        assessment.Score,
		MaxScore:     assessment.MaxScore,
		Feedback:     assessment.FeedbackText,
		Confidence:   assessment.Confidence,
	}, nil
}

func (s *gradingService) CompareAnswers(ctx context.Context, req *dto.CompareAnswersRequest) (*dto.CompareAnswersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	studentAnswer, err := uow.StudentAnswerRepository().FindOne(ctx, specification.ByID{ID: req.StudentAnswerId})
	if err != nil {
		return nil, err
	}
	if studentAnswer == nil {
		return nil, apperror.NotFound(fmt.Sprintf("student answer %s", req.StudentAnswerId))
	}

	answerKey, err := uow.AnswerKeyRepository().FindOne(ctx, specification.ByID{ID: req.AnswerKeyId})
	if err != nil {
		return nil, err
	}
	if answerKey == nil {
		return nil, apperror.NotFound(fmt.Sprintf("answer key %s", req.AnswerKeyId))
	}

	// Comparison works point by point over the whole key, so it uses full
	// document contents instead of retrieval.
	promptText, err := prompt.RenderCompare(prompt.Data{
		AnswerKey:     answerKey.Content,
		StudentAnswer: studentAnswer.Content,
	})
	if err != nil {
		return nil, err
	}

	started := time.Now()
	output, err := s.llmProvider.Generate(ctx, promptText,
		llm.WithTemperature(s.aiCfg.Temperature),
		llm.WithMaxTokens(s.aiCfg.MaxTokens),
	)
	if err != nil {
		return nil, apperror.Upstream("comparison generation", err)
	}
	elapsed := time.Since(started).Seconds()

	comparisonVerdict, err := verdict.ParseComparison(output)
	if err != nil {
		return nil, apperror.InvalidModelOutput(err.Error())
	}

	// Comparison produces no assessment row; the audit record carries the
	// "none" sentinel and full confidence.
	s.logUsage(ctx, uow, entity.UsageLogNoAssessment, entity.OperationCompareAnswers, promptText, output, elapsed, 100)

	return &dto.CompareAnswersResponse{
		CorrectPoints:   comparisonVerdict.CorrectPoints,
		IncorrectPoints: comparisonVerdict.IncorrectPoints,
		MissingPoints:   comparisonVerdict.MissingPoints,
		Suggestions:     comparisonVerdict.Suggestions,
	}, nil
}

// logUsage writes the audit record best-effort. Failures are logged, never
// propagated: a broken audit table must not fail a grading call.
func (s *gradingService) logUsage(ctx context.Context, uow unitofwork.UnitOfWork, assessmentId, operationType, inputPrompt, outputText string, processingTime float64, confidence float64) {
	usageLog := entity.UsageLog{
		Id:             uuid.New(),
		OperationType:  operationType,
		InputPrompt:    inputPrompt,
		OutputText:     outputText,
		ProcessingTime: processingTime,
		TokenCount:     estimateTokenCount(inputPrompt) + estimateTokenCount(outputText),
		AssessmentId:   assessmentId,
		Confidence:     confidence,
		CreatedAt:      time.Now(),
	}
	if err := uow.UsageLogRepository().Create(ctx, &usageLog); err != nil {
		s.log.Warn("grading", "failed to write usage log", map[string]interface{}{
			"operation_type": operationType,
			"error":          err.Error(),
		})
	}
}

// estimateTokenCount approximates 1 token per 4 characters. Counted in runes
// so multi-byte scripts are not overcharged.
func estimateTokenCount(text string) int {
	return int(math.Ceil(float64(utf8.RuneCountInString(text)) / 4))
}
