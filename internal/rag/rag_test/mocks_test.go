package rag_test

import (
	"context"

	"github.com/akolanti/RagWeb/internal/domain/ragModel"
)

// MockRetriever implements retrieval.Retriever
type MockRetriever struct {
	OnRetrieve func(ctx context.Context, query string, params ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error)
	Calls      int
	LastParams ragModel.RetrievalParams
}

func (m *MockRetriever) Retrieve(ctx context.Context, query string, params ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error) {
	m.Calls++
	m.LastParams = params
	if m.OnRetrieve != nil {
		return m.OnRetrieve(ctx, query, params)
	}
	return []ragModel.RetrievedChunk{{Text: "default context", Score: 0.5}}, nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, prompt string, params ragModel.SamplingParams) (string, error)
	Calls      int
	LastPrompt string
	LastParams ragModel.SamplingParams
}

func (m *MockLLM) Generate(ctx context.Context, prompt string, params ragModel.SamplingParams) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastParams = params
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt, params)
	}
	return "mocked llm response", nil
}
