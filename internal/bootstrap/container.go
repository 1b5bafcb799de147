package bootstrap

import (
	"context"
	"log"

	"lecture-lens-be/internal/config"
	"lecture-lens-be/internal/controller"
	"lecture-lens-be/internal/pkg/logger"
	"lecture-lens-be/internal/repository/memory"
	"lecture-lens-be/internal/repository/unitofwork"
	"lecture-lens-be/internal/service"
	"lecture-lens-be/internal/websocket"
	"lecture-lens-be/pkg/embedding"
	"lecture-lens-be/pkg/embedding/jina"
	"lecture-lens-be/pkg/llm/factory"
	"lecture-lens-be/pkg/rag"
	"lecture-lens-be/pkg/rag/enrich"
	"lecture-lens-be/pkg/reranker"
	rerankjina "lecture-lens-be/pkg/reranker/jina"

	pkgNats "lecture-lens-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FolderController     controller.IFolderController
	SessionController    controller.ISessionController
	DocumentController   controller.IDocumentController
	NoteController       controller.INoteController
	RagController        controller.IRagController
	TranscribeController controller.ITranscribeController

	// Background Services (Exposed for main.go to run)
	IndexerService      service.IIndexerService
	NotificationService *service.NotificationService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	case "jina":
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	case "openai":
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, "", cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Keys.OpenRouter,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// The reranker is optional. Without a key the pipeline falls back to
	// distance-derived relevance scores.
	var scorer reranker.Scorer
	if cfg.Keys.Jina != "" {
		scorer = rerankjina.NewJinaReranker(cfg.Keys.Jina, cfg.Ai.RerankerModel)
		log.Printf("[INFO] Using Reranker: JINA AI")
	} else {
		log.Printf("[INFO] No reranker configured, using distance fallback scores")
	}

	// 4. Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.StreamLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Retrieval Pipeline
	ragCfg := rag.DefaultConfig()
	ragCfg.TopKCandidates = cfg.Rag.TopKCandidates
	ragCfg.TopKResults = cfg.Rag.TopKResults
	ragCfg.RelevanceThreshold = cfg.Rag.RelevanceThreshold
	ragCfg.DistanceThreshold = cfg.Rag.DistanceThreshold

	enricher := enrich.NewExtractor(embeddingProvider, sysLogger.Zap())
	vectorIndex := service.NewChunkVectorIndex(uowFactory)
	citationStore := service.NewCitationWriter(uowFactory)

	pipeline := rag.NewPipeline(
		ragCfg,
		embeddingProvider,
		enricher,
		vectorIndex,
		scorer,
		citationStore,
		sysLogger.Zap(),
	)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Rag.IndexTopic, pubSub)
	indexerService := service.NewIndexerService(
		pubSub,
		cfg.Rag.IndexTopic,
		uowFactory,
		embeddingProvider,
		natsPub,
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
	)

	folderService := service.NewFolderService(uowFactory)
	sessionService := service.NewSessionService(uowFactory)
	documentService := service.NewDocumentService(uowFactory, publisherService)
	transcriptService := service.NewTranscriptService(uowFactory)
	ragService := service.NewRagService(uowFactory, pipeline)
	streamService := service.NewStreamService(pipeline, transcriptService, cfg.Rag.BufferPolicy)

	statusRepo := memory.NewStatusRepository()
	noteService := service.NewNoteService(
		uowFactory,
		llmProvider,
		statusRepo,
		natsPub,
		cfg.Ai.LLMModel,
	)

	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger) // Hub implements EventDelivery
	notifService.Start()

	// 7. Controllers
	folderController := controller.NewFolderController(folderService)
	sessionController := controller.NewSessionController(sessionService, transcriptService)
	documentController := controller.NewDocumentController(documentService)
	noteController := controller.NewNoteController(noteService)
	ragController := controller.NewRagController(ragService)
	transcribeController := controller.NewTranscribeController(streamService, sessionService, wsHub, sysLogger)

	return &Container{
		FolderController:     folderController,
		SessionController:    sessionController,
		DocumentController:   documentController,
		NoteController:       noteController,
		RagController:        ragController,
		TranscribeController: transcribeController,
		IndexerService:       indexerService,
		NotificationService:  notifService,
		WebSocketHub:         wsHub,
	}
}
