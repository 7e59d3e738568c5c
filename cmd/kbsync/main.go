// kbsync starts (or follows) a knowledge base ingestion job and waits for it to finish.
// Polling lives here, on the caller side, the API server never loops on job status.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akolanti/RagWeb/internal/awsClients"
	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/internal/ingestion"
	"github.com/akolanti/RagWeb/internal/ingestion/bedrockAgent"
	"github.com/akolanti/RagWeb/pkg/logger_i"
)

func main() {
	envFile := flag.String("env-file", ".env", "optional dotenv file")
	jobId := flag.String("job", "", "follow an existing ingestion job instead of starting one")
	interval := flag.Duration("interval", config.DefaultPollInterval, "time between status lookups")
	timeout := flag.Duration("timeout", config.DefaultPollTimeout, "give up after this long")
	flag.Parse()

	settings, err := config.Load(*envFile)
	logger_i.Init(settings.Debug, settings.Production)
	logger := logger_i.NewLogger("kbsync")
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := run(ctx, settings, *jobId, *interval, *timeout, logger)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, settings config.Settings, jobId string, interval, timeout time.Duration, logger *logger_i.Logger) int {
	clients, err := awsClients.New(ctx, settings.AWSRegion)
	if err != nil {
		logger.Error("Could not load AWS config", "error", err)
		return 1
	}

	cfg := ingestion.ServiceConfig{
		KnowledgeBaseId: settings.KnowledgeBaseID,
		DataSourceId:    settings.DataSourceID,
	}
	if settings.KnowledgeBaseID != "" && settings.DataSourceID != "" {
		cfg.KnowledgeBase = bedrockAgent.New(clients.Agent, settings.KnowledgeBaseID, settings.DataSourceID)
	}
	service := ingestion.NewService(cfg)

	if jobId == "" {
		job, err := service.StartSync(ctx)
		if err != nil {
			logger.Error("Could not start ingestion", "error", err)
			return 1
		}
		jobId = job.Id
		fmt.Printf("started ingestion job %s (%s)\n", job.Id, job.Status)
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	job, err := ingestion.AwaitTerminal(waitCtx, service, jobId, interval, func(j ingestModel.IngestionJob) {
		fmt.Printf("%s  %s\n", j.Id, j.Status)
	})
	if err != nil {
		logger.Error("Stopped waiting for ingestion job", "jobId", jobId, "lastStatus", job.Status, "error", err)
		return 1
	}

	if s := job.Statistics; s != nil {
		fmt.Printf("scanned=%d indexed=%d modified=%d deleted=%d failed=%d\n",
			s.DocumentsScanned, s.DocumentsIndexed, s.DocumentsModified, s.DocumentsDeleted, s.DocumentsFailed)
	}
	if job.Status != ingestModel.JobStatusComplete {
		for _, reason := range job.FailureReasons {
			fmt.Fprintln(os.Stderr, reason)
		}
		return 1
	}
	return 0
}
