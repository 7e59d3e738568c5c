package ingestion

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/internal/ingestion/docMetadata"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/pkg/logger_i"
)

// Service is what the HTTP layer and the kbsync command call. The remote
// clients stay private to the implementation so they can be swapped in tests.
type Service interface {
	Upload(ctx context.Context, doc ingestModel.Document) (ingestModel.StorageLocation, error)
	StartSync(ctx context.Context) (ingestModel.IngestionJob, error)
	PollStatus(ctx context.Context, jobId string) (ingestModel.IngestionJob, error)
	LatestStatus(ctx context.Context) (ingestModel.IngestionJob, bool, error)
	DocumentCount(ctx context.Context) (int, error)
}

type ServiceConfig struct {
	Storage         ingestModel.ObjectStorage
	KnowledgeBase   ingestModel.KnowledgeBase
	BucketName      string
	KnowledgeBaseId string
	DataSourceId    string
}

type service struct {
	storage         ingestModel.ObjectStorage
	knowledgeBase   ingestModel.KnowledgeBase
	bucketName      string
	knowledgeBaseId string
	dataSourceId    string
	logger          *logger_i.Logger
}

func NewService(cfg ServiceConfig) Service {
	return &service{
		storage:         cfg.Storage,
		knowledgeBase:   cfg.KnowledgeBase,
		bucketName:      cfg.BucketName,
		knowledgeBaseId: cfg.KnowledgeBaseId,
		dataSourceId:    cfg.DataSourceId,
		logger:          logger_i.NewLogger("ingestion"),
	}
}

// Upload stores one document under documents/ together with its metadata sidecar.
// Single attempt, the caller re-submits on failure.
func (s *service) Upload(ctx context.Context, doc ingestModel.Document) (ingestModel.StorageLocation, error) {
	if err := ingestModel.ValidateDocumentName(doc.Name); err != nil {
		return ingestModel.StorageLocation{}, err
	}
	if err := docMetadata.ValidateAttributes(doc.Metadata); err != nil {
		return ingestModel.StorageLocation{}, err
	}
	if s.bucketName == "" || s.storage == nil {
		return ingestModel.StorageLocation{}, appErrors.MissingSetting("S3_BUCKET_NAME")
	}
	if doc.Body == nil {
		return ingestModel.StorageLocation{}, appErrors.Validation("file", "is empty")
	}

	log := s.logger.WithTrace(ctx).With("filename", doc.Name)
	data, err := io.ReadAll(doc.Body)
	if err != nil {
		return ingestModel.StorageLocation{}, appErrors.Validation("file", "could not be read: %v", err)
	}

	key := ingestModel.ObjectKey(doc.Name)
	ctxPut, cancel := context.WithTimeout(ctx, config.StorageCallTimeout)
	defer cancel()

	location, err := s.storage.Put(ctxPut, key, bytes.NewReader(data), int64(len(data)), doc.ContentType)
	if err != nil {
		metrics.IncrementDocumentsUploaded("failed")
		return ingestModel.StorageLocation{}, err
	}

	attrs := docMetadata.Merge(docMetadata.Derive(doc.Name, data), doc.Metadata)
	sidecar, err := docMetadata.Sidecar(attrs)
	if err != nil {
		return location, appErrors.Validation("metadata", "could not be encoded: %v", err)
	}
	if _, err := s.storage.Put(ctxPut, ingestModel.MetadataKey(key), bytes.NewReader(sidecar), int64(len(sidecar)), "application/json"); err != nil {
		log.Warn("document stored without metadata", "key", key, "error", err)
		metrics.IncrementDocumentsUploaded("metadata_failed")
		return location, err
	}

	metrics.IncrementDocumentsUploaded("stored")
	log.Info("Document stored", "key", location.Key, "size", len(data))
	return location, nil
}

// StartSync asks the knowledge base to ingest whatever is in the data source.
// There is no way to cancel the remote job once started.
func (s *service) StartSync(ctx context.Context) (ingestModel.IngestionJob, error) {
	if err := s.requireKnowledgeBase(); err != nil {
		return ingestModel.IngestionJob{}, err
	}

	ctxCall, cancel := context.WithTimeout(ctx, config.IngestionCallTimeout)
	defer cancel()

	job, err := s.knowledgeBase.StartIngestionJob(ctxCall)
	if err != nil {
		return ingestModel.IngestionJob{}, err
	}
	metrics.IncrementIngestionJobsStarted()
	s.logger.WithTrace(ctx).Info("Ingestion job started", "jobId", job.Id, "status", job.Status)
	return job, nil
}

// PollStatus is a single lookup. Looping is the caller's business.
func (s *service) PollStatus(ctx context.Context, jobId string) (ingestModel.IngestionJob, error) {
	jobId = strings.TrimSpace(jobId)
	if jobId == "" {
		return ingestModel.IngestionJob{}, appErrors.Validation("job_id", "is required")
	}
	if err := s.requireKnowledgeBase(); err != nil {
		return ingestModel.IngestionJob{}, err
	}

	ctxCall, cancel := context.WithTimeout(ctx, config.IngestionCallTimeout)
	defer cancel()
	return s.knowledgeBase.GetIngestionJob(ctxCall, jobId)
}

func (s *service) LatestStatus(ctx context.Context) (ingestModel.IngestionJob, bool, error) {
	if err := s.requireKnowledgeBase(); err != nil {
		return ingestModel.IngestionJob{}, false, err
	}

	ctxCall, cancel := context.WithTimeout(ctx, config.IngestionCallTimeout)
	defer cancel()
	return s.knowledgeBase.LatestIngestionJob(ctxCall)
}

func (s *service) DocumentCount(ctx context.Context) (int, error) {
	if s.bucketName == "" || s.storage == nil {
		return 0, appErrors.MissingSetting("S3_BUCKET_NAME")
	}
	return s.storage.CountObjects(ctx, config.DocumentPrefix, func(key string) bool {
		return !ingestModel.IsDocumentKey(key)
	})
}

func (s *service) requireKnowledgeBase() error {
	if s.knowledgeBaseId == "" {
		return appErrors.MissingSetting("KNOWLEDGE_BASE_ID")
	}
	if s.dataSourceId == "" {
		return appErrors.MissingSetting("DATA_SOURCE_ID")
	}
	if s.knowledgeBase == nil {
		return appErrors.MissingSetting("KNOWLEDGE_BASE_ID")
	}
	return nil
}
