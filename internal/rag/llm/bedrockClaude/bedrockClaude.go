package bedrockClaude

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/internal/rag/llm"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// messageCreator is the part of anthropic.MessageService we call.
type messageCreator interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type claudeClient struct {
	messages messageCreator
	modelId  string
	logger   *logger_i.Logger
}

// NewBedrockClaude talks to Claude through the Bedrock runtime using the shared AWS config.
// The anthropic client retries twice by default, generation here is a single attempt.
func NewBedrockClaude(awsCfg aws.Config, modelId string, opts ...option.RequestOption) llm.Provider {
	opts = append([]option.RequestOption{bedrock.WithConfig(awsCfg), option.WithMaxRetries(0)}, opts...)
	client := anthropic.NewClient(opts...)
	return newWithMessages(&client.Messages, modelId)
}

func newWithMessages(messages messageCreator, modelId string) *claudeClient {
	return &claudeClient{
		messages: messages,
		modelId:  modelId,
		logger:   logger_i.NewLogger("llm_bedrock"),
	}
}

func (c *claudeClient) Generate(ctx context.Context, prompt string, params ragModel.SamplingParams) (string, error) {
	log := c.logger.WithTrace(ctx)
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("bedrock_generate", time.Since(start)) }()

	resp, err := c.messages.New(ctx, buildParams(c.modelId, prompt, params))
	if err != nil {
		log.Error("InvokeModel failed", "model", c.modelId, "error", err)
		return "", appErrors.Remote(appErrors.ServiceGeneration, "InvokeModel", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", appErrors.Remote(appErrors.ServiceGeneration, "InvokeModel", errors.New("response had no text content"))
	}
	return out.String(), nil
}

func buildParams(modelId string, prompt string, params ragModel.SamplingParams) anthropic.MessageNewParams {
	return anthropic.MessageNewParams{
		Model:     anthropic.Model(modelId),
		MaxTokens: int64(params.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(params.Temperature),
		TopP:        anthropic.Float(params.TopP),
		TopK:        anthropic.Int(int64(params.TopK)),
	}
}
