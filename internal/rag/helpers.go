package rag

import (
	"context"
	"time"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/internal/rag/llm"
	"github.com/akolanti/RagWeb/pkg/logger_i"
)

func (s *service) executeRetrievalStep(ctx context.Context, log *logger_i.Logger, question string, params ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error) {
	log.Debug("Answer", "step", "retrieval", "topK", params.TopK, "searchType", params.SearchType)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("retrieval", time.Since(start)) }()

	ctxCall, cancel := context.WithTimeout(ctx, config.RetrievalCallTimeout)
	defer cancel()

	chunks, err := s.retriever.Retrieve(ctxCall, question, params)
	if err != nil {
		log.Error("retrieval failed", "error", err)
		return nil, err
	}
	metrics.ObserveRetrievedChunks(len(chunks))
	return chunks, nil
}

func (s *service) executeGenerationStep(ctx context.Context, log *logger_i.Logger, provider llm.Provider, backend ragModel.Backend, prompt string, params ragModel.SamplingParams) (string, error) {
	log.Debug("Answer", "step", "generation", "backend", backend)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	ctxCall, cancel := context.WithTimeout(ctx, config.GenerationCallTimeout)
	defer cancel()

	text, err := provider.Generate(ctxCall, prompt, params)
	observeAnswer(backend, err)
	if err != nil {
		log.Error("generation failed", "error", err)
		return "", err
	}
	return text, nil
}
