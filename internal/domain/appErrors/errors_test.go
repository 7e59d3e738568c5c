package appErrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		canRetry bool
	}{
		{"nil", nil, http.StatusOK, false},
		{"validation", Validation("question", "is required"), http.StatusBadRequest, false},
		{"configuration", MissingSetting("KNOWLEDGE_BASE_ID"), http.StatusInternalServerError, false},
		{"remote", Remote(ServiceRetrieval, "Retrieve", errors.New("throttled")), http.StatusBadGateway, true},
		{"remote not found", RemoteNotFound(ServiceIngestion, "GetIngestionJob", errors.New("no job")), http.StatusNotFound, false},
		{"wrapped remote", fmt.Errorf("ask: %w", Remote(ServiceGeneration, "Generate", errors.New("down"))), http.StatusBadGateway, true},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.status {
				t.Errorf("HTTPStatus got %d, want %d", got, tt.status)
			}
			if got := CanRetry(tt.err); got != tt.canRetry {
				t.Errorf("CanRetry got %v, want %v", got, tt.canRetry)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	if got := MissingSetting("S3_BUCKET_NAME").Error(); got != "S3_BUCKET_NAME not configured" {
		t.Errorf("got %q", got)
	}
	upstream := errors.New("AccessDenied: not allowed")
	err := Remote(ServiceStorage, "PutObject", upstream)
	if got := err.Error(); got != "storage PutObject failed: AccessDenied: not allowed" {
		t.Errorf("got %q", got)
	}
	if !errors.Is(err, upstream) {
		t.Error("RemoteServiceError should unwrap to the upstream error")
	}
	if got := Validation("", "bad").Error(); got != "bad" {
		t.Errorf("got %q", got)
	}
}
