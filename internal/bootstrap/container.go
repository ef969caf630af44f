package bootstrap

import (
	"log"

	"ai-grading-be/internal/config"
	"ai-grading-be/internal/controller"
	"ai-grading-be/internal/pkg/logger"
	"ai-grading-be/internal/repository/memory"
	"ai-grading-be/internal/repository/unitofwork"
	"ai-grading-be/internal/service"
	"ai-grading-be/pkg/database"
	"ai-grading-be/pkg/embedding"
	"ai-grading-be/pkg/filestore"
	"ai-grading-be/pkg/llm/factory"

	pkgNats "ai-grading-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssessmentController    controller.IAssessmentController
	AnswerKeyController     controller.IAnswerKeyController
	StudentAnswerController controller.IStudentAnswerController
	UsageLogController      controller.IUsageLogController
	HealthController        controller.IHealthController
	TeacherController       controller.ITeacherController
	ClassController         controller.IClassController
	StudentController       controller.IStudentController
	TermController          controller.ITermController
	SubjectController       controller.ISubjectController
	FolderController        controller.IFolderController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	indexerLogger := logger.NewIsolatedLogger(cfg.App.IndexerLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingBaseURL := cfg.Ai.LMStudioBaseURL
	llmBaseURL := cfg.Ai.LMStudioBaseURL
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingBaseURL = cfg.Ai.OllamaBaseURL
	}
	if cfg.Ai.LLMProvider == "ollama" {
		llmBaseURL = cfg.Ai.OllamaBaseURL
	}

	embeddingProvider, err := embedding.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		embeddingBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3.5 Infrastructure
	// NATS (optional, grading still works without it)
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	indexManager := database.NewVectorIndexManager(
		database.NewGormSchemaExecutor(db),
		database.VectorIndexConfig{
			M:              cfg.Vector.HNSWM,
			EfConstruction: cfg.Vector.HNSWEfConstruct,
		},
	)

	fileStore, err := filestore.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize file store: %v", err)
	}

	embeddingCache := memory.NewEmbeddingCache()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.EmbedTopicName)

	indexerService := service.NewIndexerService(
		uowFactory,
		embeddingProvider,
		indexManager,
		natsPub,
		cfg.Vector,
		indexerLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedTopicName,
		indexerService,
		indexerLogger,
	)

	retrieverService := service.NewRetrieverService(
		uowFactory,
		embeddingProvider,
		embeddingCache,
		sysLogger,
	)
	gradingService := service.NewGradingService(
		uowFactory,
		retrieverService,
		llmProvider,
		natsPub,
		cfg.Ai,
		sysLogger,
	)

	answerKeyService := service.NewAnswerKeyService(uowFactory, publisherService, indexerService, fileStore, sysLogger)
	studentAnswerService := service.NewStudentAnswerService(uowFactory, publisherService, indexerService, fileStore, sysLogger)
	assessmentService := service.NewAssessmentService(uowFactory)
	usageLogService := service.NewUsageLogService(uowFactory)

	teacherService := service.NewTeacherService(uowFactory)
	classService := service.NewClassService(uowFactory)
	studentService := service.NewStudentService(uowFactory)
	termService := service.NewTermService(uowFactory)
	subjectService := service.NewSubjectService(uowFactory)
	folderService := service.NewFolderService(uowFactory)

	// 5. Controllers
	return &Container{
		AssessmentController:    controller.NewAssessmentController(gradingService, assessmentService),
		AnswerKeyController:     controller.NewAnswerKeyController(answerKeyService),
		StudentAnswerController: controller.NewStudentAnswerController(studentAnswerService),
		UsageLogController:      controller.NewUsageLogController(usageLogService),
		HealthController:        controller.NewHealthController(llmProvider),
		TeacherController:       controller.NewTeacherController(teacherService),
		ClassController:         controller.NewClassController(classService),
		StudentController:       controller.NewStudentController(studentService),
		TermController:          controller.NewTermController(termService),
		SubjectController:       controller.NewSubjectController(subjectService),
		FolderController:        controller.NewFolderController(folderService),

		ConsumerService: consumerService,
	}
}
