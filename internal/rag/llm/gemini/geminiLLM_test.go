package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockModels struct {
	OnGenerate func(model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return m.OnGenerate(model, contents, cfg)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: genai.NewContentFromText(text, genai.RoleModel)},
	}}
}

func TestBuildConfig(t *testing.T) {
	cfg := buildConfig(ragModel.SamplingParams{Temperature: 0.2, TopP: 0.8, TopK: 12, MaxTokens: 256})

	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.2, *cfg.Temperature, 1e-6)
	assert.InDelta(t, 0.8, *cfg.TopP, 1e-6)
	assert.Equal(t, float32(12), *cfg.TopK)
	assert.Equal(t, int32(256), cfg.MaxOutputTokens)
}

func TestGenerate(t *testing.T) {
	models := &mockModels{OnGenerate: func(model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		assert.Equal(t, "gemini-2.5-flash", model)
		require.Len(t, contents, 1)
		assert.Equal(t, "the prompt", contents[0].Parts[0].Text)
		return textResponse("the answer"), nil
	}}

	out, err := newWithModels(models, "gemini-2.5-flash").Generate(context.Background(), "the prompt", ragModel.SamplingParams{TopK: 40})
	require.NoError(t, err)
	assert.Equal(t, "the answer", out)
}

func TestGenerate_Failure(t *testing.T) {
	models := &mockModels{OnGenerate: func(string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("quota exceeded")
	}}

	_, err := newWithModels(models, "m").Generate(context.Background(), "p", ragModel.SamplingParams{})
	var remoteErr *appErrors.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, appErrors.ServiceGeneration, remoteErr.Service)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNewGeminiClient_NoKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "m")
	var configErr *appErrors.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}
