package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/akolanti/RagWeb/internal/api"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
)

func TestToRequestConfig_Defaults(t *testing.T) {
	cfg, err := ToRequestConfig(api.AskRequest{Question: "q"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Retrieval.TopK != 4 || cfg.Retrieval.SearchType != ragModel.SearchTypeSemantic || cfg.Retrieval.Reranking {
		t.Errorf("retrieval defaults got %+v", cfg.Retrieval)
	}
	want := ragModel.SamplingParams{Temperature: 1.0, TopP: 0.95, TopK: 40, MaxTokens: 1024}
	if cfg.Sampling != want {
		t.Errorf("sampling defaults got %+v", cfg.Sampling)
	}
	if cfg.Backend() != ragModel.BackendBedrock {
		t.Errorf("backend should follow the setting, got %s", cfg.Backend())
	}
}

func TestToRequestConfig_Overrides(t *testing.T) {
	topK, llmTopK, maxTokens := 9, 5, 200
	temp, topP := 0.2, 0.7
	useBedrock := false

	cfg, err := ToRequestConfig(api.AskRequest{
		Question:       "q",
		TopK:           &topK,
		SearchType:     "HYBRID",
		Reranking:      true,
		MetadataFilter: map[string]any{"equals": map[string]any{"key": "file_type", "value": "pdf"}},
		Temperature:    &temp,
		TopP:           &topP,
		LLMTopK:        &llmTopK,
		MaxTokens:      &maxTokens,
		UseBedrockLLM:  &useBedrock,
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Retrieval.TopK != 9 || cfg.Retrieval.SearchType != ragModel.SearchTypeHybrid || !cfg.Retrieval.Reranking {
		t.Errorf("retrieval got %+v", cfg.Retrieval)
	}
	if cfg.Retrieval.MetadataFilter == nil || cfg.Retrieval.MetadataFilter.Key != "file_type" {
		t.Errorf("filter got %+v", cfg.Retrieval.MetadataFilter)
	}
	if cfg.Sampling != (ragModel.SamplingParams{Temperature: 0.2, TopP: 0.7, TopK: 5, MaxTokens: 200}) {
		t.Errorf("sampling got %+v", cfg.Sampling)
	}
	if cfg.Backend() != ragModel.BackendGemini {
		t.Errorf("request flag should win over the setting")
	}
}

func TestToRequestConfig_BadFilter(t *testing.T) {
	_, err := ToRequestConfig(api.AskRequest{Question: "q", MetadataFilter: map[string]any{"like": "x"}}, false)
	var validationErr *appErrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestToIngestionStatusResponse(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	res := ToIngestionStatusResponse(ingestModel.IngestionJob{
		Id:         "job-1",
		Status:     ingestModel.JobStatusInProgress,
		StartedAt:  started,
		Statistics: &ingestModel.JobStatistics{DocumentsScanned: 3},
	})
	if res.JobId != "job-1" || res.Status != "IN_PROGRESS" || !res.StartedAt.Equal(started) {
		t.Errorf("unexpected response %+v", res)
	}
	if res.UpdatedAt != nil || res.FailureReasons == nil || res.Statistics.DocumentsScanned != 3 {
		t.Errorf("unexpected optional fields %+v", res)
	}
}

func TestToSyncStatusResponse_NoJobs(t *testing.T) {
	if got := ToSyncStatusResponse(ingestModel.IngestionJob{}, false); got.Status != "no_jobs_found" {
		t.Errorf("status got %s", got.Status)
	}
}

func TestToErrorResponse(t *testing.T) {
	res := ToErrorResponse(appErrors.Remote(appErrors.ServiceRetrieval, "Retrieve", errors.New("boom")), "trace-1")
	if res.Error.Code != 502 || !res.Error.Retry || res.TraceId != "trace-1" {
		t.Errorf("unexpected error response %+v", res)
	}
}
