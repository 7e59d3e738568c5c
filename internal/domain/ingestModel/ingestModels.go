package ingestModel

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
)

type JobStatus string

// Values as reported by the knowledge base ingestion API.
const (
	JobStatusStarting   JobStatus = "STARTING"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusComplete   JobStatus = "COMPLETE"
	JobStatusFailed     JobStatus = "FAILED"
	JobStatusStopping   JobStatus = "STOPPING"
	JobStatusStopped    JobStatus = "STOPPED"
)

var allowedExtensions = map[string]struct{}{
	".txt":  {},
	".pdf":  {},
	".md":   {},
	".csv":  {},
	".html": {},
	".htm":  {},
	".doc":  {},
	".docx": {},
}

// Document is a user file on its way to object storage. It is never kept locally.
type Document struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
	Metadata    map[string]any
}

type StorageLocation struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type JobStatistics struct {
	DocumentsScanned  int64 `json:"documents_scanned"`
	DocumentsIndexed  int64 `json:"documents_indexed"`
	DocumentsModified int64 `json:"documents_modified"`
	DocumentsDeleted  int64 `json:"documents_deleted"`
	DocumentsFailed   int64 `json:"documents_failed"`
}

// IngestionJob is a transient view of a job owned by the remote service.
type IngestionJob struct {
	Id             string
	Status         JobStatus
	StartedAt      time.Time
	UpdatedAt      time.Time
	FailureReasons []string
	Statistics     *JobStatistics
}

// ObjectStorage is the capability the ingestion orchestrator needs from the document bucket.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (StorageLocation, error)
	CountObjects(ctx context.Context, prefix string, skip func(key string) bool) (int, error)
}

// KnowledgeBase is the capability the ingestion orchestrator needs from the managed ingestion API.
type KnowledgeBase interface {
	StartIngestionJob(ctx context.Context) (IngestionJob, error)
	GetIngestionJob(ctx context.Context, jobId string) (IngestionJob, error)
	LatestIngestionJob(ctx context.Context) (IngestionJob, bool, error)
}

func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusComplete, JobStatusFailed, JobStatusStopped:
		return true
	default:
		return false
	}
}

func statusRank(s JobStatus) int {
	switch s {
	case JobStatusStarting:
		return 0
	case JobStatusInProgress, JobStatusStopping:
		return 1
	case JobStatusComplete, JobStatusFailed, JobStatusStopped:
		return 2
	default:
		return -1
	}
}

// CanTransition reports whether a job may move from one observed status to the next.
// Terminal states are absorbing and nothing goes back to STARTING.
func CanTransition(from JobStatus, to JobStatus) bool {
	if from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	fromRank, toRank := statusRank(from), statusRank(to)
	if fromRank < 0 || toRank < 0 {
		// unknown remote values are passed through
		return true
	}
	return toRank > fromRank || (from == JobStatusInProgress && to == JobStatusStopping)
}

func Extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

func IsAllowedExtension(name string) bool {
	_, ok := allowedExtensions[Extension(name)]
	return ok
}

func AllowedExtensions() []string {
	out := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// ValidateDocumentName checks the name before anything leaves the process.
func ValidateDocumentName(name string) error {
	base := BaseName(name)
	if base == "" || base == "." || base == "/" {
		return appErrors.Validation("filename", "is required")
	}
	if !IsAllowedExtension(base) {
		return appErrors.Validation("filename", "unsupported file type %q, allowed types: %s",
			Extension(base), strings.Join(AllowedExtensions(), ", "))
	}
	return nil
}

// BaseName strips any client supplied directories, windows or unix style.
func BaseName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	return path.Base(name)
}

func ObjectKey(name string) string {
	return config.DocumentPrefix + BaseName(name)
}

func MetadataKey(objectKey string) string {
	return objectKey + config.MetadataSidecarSuffix
}

// IsDocumentKey is false for folder markers and metadata sidecars.
func IsDocumentKey(key string) bool {
	return !strings.HasSuffix(key, "/") && !strings.HasSuffix(key, config.MetadataSidecarSuffix)
}
