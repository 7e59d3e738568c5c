package adapter

import (
	"net/http"
	"time"

	"github.com/akolanti/RagWeb/internal/api"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
)

func ToSyncResponse(job ingestModel.IngestionJob) api.SyncResponse {
	return api.SyncResponse{
		IngestionJobId: job.Id,
		Status:         string(job.Status),
		Message:        "Ingestion job started.",
	}
}

func ToSyncStatusResponse(job ingestModel.IngestionJob, found bool) api.SyncStatusResponse {
	if !found {
		return api.SyncStatusResponse{Status: "no_jobs_found"}
	}
	return api.SyncStatusResponse{
		Status:    string(job.Status),
		StartedAt: timeOrNil(job.StartedAt),
		UpdatedAt: timeOrNil(job.UpdatedAt),
	}
}

func ToIngestionStatusResponse(job ingestModel.IngestionJob) api.IngestionStatusResponse {
	res := api.IngestionStatusResponse{
		JobId:          job.Id,
		Status:         string(job.Status),
		StartedAt:      timeOrNil(job.StartedAt),
		UpdatedAt:      timeOrNil(job.UpdatedAt),
		FailureReasons: job.FailureReasons,
	}
	if res.FailureReasons == nil {
		res.FailureReasons = []string{}
	}
	if s := job.Statistics; s != nil {
		res.Statistics = &api.JobStatistics{
			DocumentsScanned:  s.DocumentsScanned,
			DocumentsIndexed:  s.DocumentsIndexed,
			DocumentsModified: s.DocumentsModified,
			DocumentsDeleted:  s.DocumentsDeleted,
			DocumentsFailed:   s.DocumentsFailed,
		}
	}
	return res
}

func ToLastIngestion(job ingestModel.IngestionJob, found bool) *api.LastIngestion {
	if !found {
		return nil
	}
	return &api.LastIngestion{Status: string(job.Status), StartedAt: timeOrNil(job.StartedAt)}
}

func ToErrorResponse(err error, traceId string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.OutgoingError{
			Code:    appErrors.HTTPStatus(err),
			Message: err.Error(),
			Retry:   appErrors.CanRetry(err),
		},
		TraceId: traceId,
	}
}

func BadRequest(message string, code int, traceId string) api.ErrorResponse {
	return api.ErrorResponse{
		Error:   api.OutgoingError{Code: code, Message: message, Retry: code == http.StatusTooManyRequests},
		TraceId: traceId,
	}
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
