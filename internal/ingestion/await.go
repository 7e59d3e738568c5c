package ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/pkg/logger_i"
)

type StatusPoller interface {
	PollStatus(ctx context.Context, jobId string) (ingestModel.IngestionJob, error)
}

// AwaitTerminal polls until the job reaches COMPLETE, FAILED or STOPPED, the
// context ends, or a poll fails. onStatus, when set, sees every observation.
// The last observed job is always returned.
func AwaitTerminal(ctx context.Context, poller StatusPoller, jobId string, interval time.Duration, onStatus func(ingestModel.IngestionJob)) (ingestModel.IngestionJob, error) {
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	log := logger_i.NewLogger("ingestion_await").With("jobId", jobId)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last ingestModel.IngestionJob
	for {
		job, err := poller.PollStatus(ctx, jobId)
		if err != nil {
			return last, err
		}
		if last.Status != "" && !ingestModel.CanTransition(last.Status, job.Status) {
			log.Warn("unexpected status transition", "from", last.Status, "to", job.Status)
		}
		last = job
		if onStatus != nil {
			onStatus(job)
		}
		if job.Status.IsTerminal() {
			return job, nil
		}

		select {
		case <-ctx.Done():
			return last, fmt.Errorf("waiting for ingestion job %s: %w", jobId, ctx.Err())
		case <-ticker.C:
		}
	}
}
