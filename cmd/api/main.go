// @title           Knowledge Base RAG API
// @version         1.0
// @description     Uploads documents to S3, syncs them into a Bedrock knowledge base and answers questions over them.

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8001
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akolanti/RagWeb/internal/awsClients"
	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/data/redisStore"
	"github.com/akolanti/RagWeb/internal/handlers"
	"github.com/akolanti/RagWeb/internal/ingestion"
	"github.com/akolanti/RagWeb/internal/ingestion/bedrockAgent"
	"github.com/akolanti/RagWeb/internal/ingestion/s3Storage"
	"github.com/akolanti/RagWeb/internal/middleware"
	"github.com/akolanti/RagWeb/internal/rag"
	"github.com/akolanti/RagWeb/internal/rag/llm"
	"github.com/akolanti/RagWeb/internal/rag/llm/bedrockClaude"
	"github.com/akolanti/RagWeb/internal/rag/llm/gemini"
	"github.com/akolanti/RagWeb/internal/rag/retrieval/bedrockKB"
	"github.com/akolanti/RagWeb/internal/server"
	"github.com/akolanti/RagWeb/pkg/logger_i"
)

func main() {
	envFile := flag.String("env-file", ".env", "optional dotenv file")
	listenAddr := flag.String("listen-addr", "", "server listen address, defaults to :$PORT")
	flag.Parse()

	settings, err := config.Load(*envFile)
	logger_i.Init(settings.Debug, settings.Production)
	logger := logger_i.NewLogger("main")
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if *listenAddr == "" {
		*listenAddr = settings.ListenAddr()
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	clients, err := awsClients.New(serviceContext, settings.AWSRegion)
	if err != nil {
		logger.Error("Could not load AWS config", "error", err)
		os.Exit(1)
	}
	awsCreds := clients.HasCredentials(serviceContext)
	if !awsCreds {
		logger.Warn("No AWS credentials found, storage, ingestion and retrieval calls will fail")
	}

	ingestConfig := ingestion.ServiceConfig{
		BucketName:      settings.S3BucketName,
		KnowledgeBaseId: settings.KnowledgeBaseID,
		DataSourceId:    settings.DataSourceID,
	}
	if settings.S3BucketName != "" {
		ingestConfig.Storage = s3Storage.New(clients.S3, settings.S3BucketName)
	}
	if settings.KnowledgeBaseID != "" && settings.DataSourceID != "" {
		ingestConfig.KnowledgeBase = bedrockAgent.New(clients.Agent, settings.KnowledgeBaseID, settings.DataSourceID)
	}
	ingestService := ingestion.NewService(ingestConfig)

	var geminiProvider, bedrockProvider llm.Provider
	if p, err := gemini.NewGeminiClient(serviceContext, settings.GeminiAPIKey, settings.GeminiModel); err == nil {
		geminiProvider = p
	} else {
		logger.Warn("Gemini backend unavailable", "error", err)
	}
	if settings.BedrockModelID != "" {
		bedrockProvider = bedrockClaude.NewBedrockClaude(clients.Config, settings.BedrockModelID)
	}
	ragService := rag.NewService(bedrockKB.New(clients.AgentRuntime, settings.KnowledgeBaseID, settings.AWSRegion), geminiProvider, bedrockProvider)

	defaultReady := geminiProvider != nil
	if settings.UseBedrockLLM {
		defaultReady = bedrockProvider != nil
	}
	h := handlers.New(handlers.Dependencies{
		Ingestion:      ingestService,
		RAG:            ragService,
		Settings:       settings,
		LLMConfigured:  defaultReady,
		AWSCredentials: awsCreds,
	})

	mw := middleware.New(newLimiter(serviceContext, settings, logger))

	logger.Info("Services ready",
		"llm", settings.LLMBackendName(),
		"knowledgeBase", settings.KnowledgeBaseID != "",
		"bucket", settings.S3BucketName != "")

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	go server.ShutDownHandler(server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	})
	go server.CreateServer(*listenAddr, server.NewRouter(h, mw))

	<-stopExecution
	logger.Info("Server stopped")
}

// newLimiter shares rate limit windows through redis when it is reachable.
func newLimiter(ctx context.Context, settings config.Settings, logger *logger_i.Logger) middleware.Limiter {
	local := middleware.NewDefaultIPRateLimiter()
	if settings.RedisAddr == "" {
		return local
	}
	store, err := redisStore.Connect(ctx, settings.RedisAddr, settings.RedisPassword, config.RedisRateLimitDB)
	if err != nil {
		logger.Error("Redis is offline, using in-memory rate limiter", "error", err)
		return local
	}
	store.CloseOnDone(ctx)
	return middleware.NewRedisRateLimiter(store, config.BURST_RATE_LIMIT_PER_SECOND, time.Second, local)
}
