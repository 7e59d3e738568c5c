package llm

import (
	"context"

	"github.com/akolanti/RagWeb/internal/domain/ragModel"
)

// Provider turns a fully built prompt into answer text. Sampling params go through untouched.
type Provider interface {
	Generate(ctx context.Context, prompt string, params ragModel.SamplingParams) (string, error)
}
