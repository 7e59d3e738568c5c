package bedrockAgent

import (
	"context"
	"errors"
	"time"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/google/uuid"
)

// API is the slice of the bedrock agent client used for ingestion jobs.
type API interface {
	StartIngestionJob(ctx context.Context, params *bedrockagent.StartIngestionJobInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.StartIngestionJobOutput, error)
	GetIngestionJob(ctx context.Context, params *bedrockagent.GetIngestionJobInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetIngestionJobOutput, error)
	ListIngestionJobs(ctx context.Context, params *bedrockagent.ListIngestionJobsInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.ListIngestionJobsOutput, error)
}

type knowledgeBase struct {
	api             API
	knowledgeBaseId string
	dataSourceId    string
	logger          *logger_i.Logger
}

// New binds the ingestion API to one knowledge base data source.
func New(api API, knowledgeBaseId string, dataSourceId string) ingestModel.KnowledgeBase {
	return &knowledgeBase{
		api:             api,
		knowledgeBaseId: knowledgeBaseId,
		dataSourceId:    dataSourceId,
		logger:          logger_i.NewLogger("bedrock_agent"),
	}
}

func (k *knowledgeBase) StartIngestionJob(ctx context.Context) (ingestModel.IngestionJob, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("kb_start_ingestion", time.Since(start)) }()

	out, err := k.api.StartIngestionJob(ctx, &bedrockagent.StartIngestionJobInput{
		KnowledgeBaseId: aws.String(k.knowledgeBaseId),
		DataSourceId:    aws.String(k.dataSourceId),
		ClientToken:     aws.String(uuid.NewString()),
	})
	if err != nil {
		k.logger.WithTrace(ctx).Error("StartIngestionJob failed", "error", err)
		return ingestModel.IngestionJob{}, appErrors.Remote(appErrors.ServiceIngestion, "StartIngestionJob", err)
	}
	if out.IngestionJob == nil {
		return ingestModel.IngestionJob{}, appErrors.Remote(appErrors.ServiceIngestion, "StartIngestionJob", errors.New("response had no ingestion job"))
	}
	return fromJob(out.IngestionJob), nil
}

func (k *knowledgeBase) GetIngestionJob(ctx context.Context, jobId string) (ingestModel.IngestionJob, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("kb_get_ingestion", time.Since(start)) }()

	out, err := k.api.GetIngestionJob(ctx, &bedrockagent.GetIngestionJobInput{
		KnowledgeBaseId: aws.String(k.knowledgeBaseId),
		DataSourceId:    aws.String(k.dataSourceId),
		IngestionJobId:  aws.String(jobId),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return ingestModel.IngestionJob{}, appErrors.RemoteNotFound(appErrors.ServiceIngestion, "GetIngestionJob", err)
		}
		k.logger.WithTrace(ctx).Error("GetIngestionJob failed", "jobId", jobId, "error", err)
		return ingestModel.IngestionJob{}, appErrors.Remote(appErrors.ServiceIngestion, "GetIngestionJob", err)
	}
	if out.IngestionJob == nil {
		return ingestModel.IngestionJob{}, appErrors.RemoteNotFound(appErrors.ServiceIngestion, "GetIngestionJob", errors.New("job "+jobId+" not found"))
	}
	return fromJob(out.IngestionJob), nil
}

func (k *knowledgeBase) LatestIngestionJob(ctx context.Context) (ingestModel.IngestionJob, bool, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("kb_list_ingestion", time.Since(start)) }()

	out, err := k.api.ListIngestionJobs(ctx, &bedrockagent.ListIngestionJobsInput{
		KnowledgeBaseId: aws.String(k.knowledgeBaseId),
		DataSourceId:    aws.String(k.dataSourceId),
		MaxResults:      aws.Int32(1),
		SortBy: &types.IngestionJobSortBy{
			Attribute: types.IngestionJobSortByAttributeStartedAt,
			Order:     types.SortOrderDescending,
		},
	})
	if err != nil {
		return ingestModel.IngestionJob{}, false, appErrors.Remote(appErrors.ServiceIngestion, "ListIngestionJobs", err)
	}
	if len(out.IngestionJobSummaries) == 0 {
		return ingestModel.IngestionJob{}, false, nil
	}
	return fromSummary(out.IngestionJobSummaries[0]), true, nil
}

func fromJob(j *types.IngestionJob) ingestModel.IngestionJob {
	job := ingestModel.IngestionJob{
		Id:             aws.ToString(j.IngestionJobId),
		Status:         ingestModel.JobStatus(j.Status),
		StartedAt:      aws.ToTime(j.StartedAt),
		UpdatedAt:      aws.ToTime(j.UpdatedAt),
		FailureReasons: j.FailureReasons,
	}
	if s := j.Statistics; s != nil {
		job.Statistics = &ingestModel.JobStatistics{
			DocumentsScanned:  s.NumberOfDocumentsScanned,
			DocumentsIndexed:  s.NumberOfNewDocumentsIndexed,
			DocumentsModified: s.NumberOfModifiedDocumentsIndexed,
			DocumentsDeleted:  s.NumberOfDocumentsDeleted,
			DocumentsFailed:   s.NumberOfDocumentsFailed,
		}
	}
	return job
}

func fromSummary(s types.IngestionJobSummary) ingestModel.IngestionJob {
	return ingestModel.IngestionJob{
		Id:        aws.ToString(s.IngestionJobId),
		Status:    ingestModel.JobStatus(s.Status),
		StartedAt: aws.ToTime(s.StartedAt),
		UpdatedAt: aws.ToTime(s.UpdatedAt),
	}
}

