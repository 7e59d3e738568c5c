package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/internal/rag/llm"
	"github.com/akolanti/RagWeb/internal/rag/retrieval"
	"github.com/akolanti/RagWeb/pkg/logger_i"
)

/*
Same opaque interface pattern as the ingestion service: handlers only see
Service, the retriever and both generation backends stay private so tests
can hand in doubles.
*/

type Service interface {
	Retrieve(ctx context.Context, question string, params ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error)
	Generate(ctx context.Context, question string, chunks []ragModel.RetrievedChunk, cfg ragModel.RequestConfig) (ragModel.Answer, error)
	Answer(ctx context.Context, question string, cfg ragModel.RequestConfig) (ragModel.Answer, error)
}

type service struct {
	retriever retrieval.Retriever
	gemini    llm.Provider
	bedrock   llm.Provider
	logger    *logger_i.Logger
}

// NewService wires the pipeline. A nil backend is reported as not configured when a request selects it.
func NewService(retriever retrieval.Retriever, gemini llm.Provider, bedrock llm.Provider) Service {
	return &service{
		retriever: retriever,
		gemini:    gemini,
		bedrock:   bedrock,
		logger:    logger_i.NewLogger("rag"),
	}
}

func (s *service) Retrieve(ctx context.Context, question string, params ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error) {
	if err := validateQuestion(question); err != nil {
		return nil, err
	}
	if err := validateRetrieval(params); err != nil {
		return nil, err
	}
	if s.retriever == nil {
		return nil, appErrors.MissingSetting("KNOWLEDGE_BASE_ID")
	}
	return s.executeRetrievalStep(ctx, s.logger.WithTrace(ctx), question, params)
}

func (s *service) Generate(ctx context.Context, question string, chunks []ragModel.RetrievedChunk, cfg ragModel.RequestConfig) (ragModel.Answer, error) {
	if err := validateQuestion(question); err != nil {
		return ragModel.Answer{}, err
	}
	backend := cfg.Backend()
	provider, err := s.providerFor(backend)
	if err != nil {
		return ragModel.Answer{}, err
	}
	text, err := s.executeGenerationStep(ctx, s.logger.WithTrace(ctx), provider, backend, BuildPrompt(question, chunks), cfg.Sampling)
	if err != nil {
		return ragModel.Answer{}, err
	}
	return ragModel.Answer{Text: text, Chunks: chunks, Backend: backend}, nil
}

// Answer runs retrieve then generate. No chunks is not an error, the model still answers.
func (s *service) Answer(ctx context.Context, question string, cfg ragModel.RequestConfig) (ragModel.Answer, error) {
	if err := validateQuestion(question); err != nil {
		return ragModel.Answer{}, err
	}
	if err := validateRetrieval(cfg.Retrieval); err != nil {
		return ragModel.Answer{}, err
	}
	if s.retriever == nil {
		return ragModel.Answer{}, appErrors.MissingSetting("KNOWLEDGE_BASE_ID")
	}
	backend := cfg.Backend()
	provider, err := s.providerFor(backend)
	if err != nil {
		return ragModel.Answer{}, err
	}

	log := s.logger.WithTrace(ctx).With("backend", backend)

	chunks, err := s.executeRetrievalStep(ctx, log, question, cfg.Retrieval)
	if err != nil {
		return ragModel.Answer{}, err
	}
	if len(chunks) == 0 {
		log.Warn("no chunks retrieved, generating without context")
	}

	text, err := s.executeGenerationStep(ctx, log, provider, backend, BuildPrompt(question, chunks), cfg.Sampling)
	if err != nil {
		return ragModel.Answer{}, err
	}
	return ragModel.Answer{Text: text, Chunks: chunks, Backend: backend}, nil
}

// BuildPrompt joins chunk texts with newlines in retrieval order.
func BuildPrompt(question string, chunks []ragModel.RetrievedChunk) string {
	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Text)
	}
	return fmt.Sprintf(config.PromptTemplate, strings.Join(texts, "\n"), question)
}

func (s *service) providerFor(backend ragModel.Backend) (llm.Provider, error) {
	switch backend {
	case ragModel.BackendBedrock:
		if s.bedrock == nil {
			return nil, appErrors.MissingSetting("BEDROCK_MODEL_ID")
		}
		return s.bedrock, nil
	default:
		if s.gemini == nil {
			return nil, appErrors.MissingSetting("GOOGLE_API_KEY")
		}
		return s.gemini, nil
	}
}

func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return appErrors.Validation("question", "is required")
	}
	return nil
}

func validateRetrieval(params ragModel.RetrievalParams) error {
	if params.TopK < 1 || params.TopK > config.MaxTopK {
		return appErrors.Validation("top_k", "must be between 1 and %d", config.MaxTopK)
	}
	switch params.SearchType {
	case ragModel.SearchTypeSemantic, ragModel.SearchTypeHybrid:
	default:
		return appErrors.Validation("search_type", "must be %s or %s", ragModel.SearchTypeSemantic, ragModel.SearchTypeHybrid)
	}
	return nil
}

func observeAnswer(backend ragModel.Backend, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	metrics.IncrementAnswersGenerated(string(backend), outcome)
}
