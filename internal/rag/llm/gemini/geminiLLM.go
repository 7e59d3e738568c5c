package gemini

import (
	"context"
	"errors"
	"time"

	"github.com/akolanti/RagWeb/internal/customHttpClient"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/internal/rag/llm"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"google.golang.org/genai"
)

// contentGenerator is the part of genai.Models we call.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type llmClient struct {
	models    contentGenerator
	modelName string
	logger    *logger_i.Logger
}

func NewGeminiClient(ctx context.Context, apiKey string, modelName string) (llm.Provider, error) {
	if apiKey == "" {
		return nil, appErrors.MissingSetting("GOOGLE_API_KEY")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: customHttpClient.NewClient(),
	})
	if err != nil {
		return nil, err
	}
	logger := logger_i.NewLogger("llm_gemini")
	logger.Info("Gemini client created", "model", modelName)
	return newWithModels(c.Models, modelName), nil
}

func newWithModels(models contentGenerator, modelName string) *llmClient {
	return &llmClient{
		models:    models,
		modelName: modelName,
		logger:    logger_i.NewLogger("llm_gemini"),
	}
}

func (c *llmClient) Generate(ctx context.Context, prompt string, params ragModel.SamplingParams) (string, error) {
	log := c.logger.WithTrace(ctx)
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("gemini_generate", time.Since(start)) }()

	result, err := c.models.GenerateContent(ctx, c.modelName, genai.Text(prompt), buildConfig(params))
	if err != nil {
		log.Error("GenerateContent failed", "model", c.modelName, "error", err)
		return "", appErrors.Remote(appErrors.ServiceGeneration, "GenerateContent", err)
	}
	if result == nil {
		return "", appErrors.Remote(appErrors.ServiceGeneration, "GenerateContent", errors.New("empty response"))
	}

	text := result.Text()
	if text == "" {
		return "", appErrors.Remote(appErrors.ServiceGeneration, "GenerateContent", errors.New("response had no text, it may have been blocked"))
	}
	return text, nil
}

func buildConfig(params ragModel.SamplingParams) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(params.Temperature)),
		TopP:            genai.Ptr(float32(params.TopP)),
		TopK:            genai.Ptr(float32(params.TopK)),
		MaxOutputTokens: int32(params.MaxTokens),
	}
}
