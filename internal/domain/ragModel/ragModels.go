package ragModel

import (
	"github.com/akolanti/RagWeb/internal/config"
)

type SearchType string

const (
	SearchTypeSemantic SearchType = config.SearchTypeSemantic
	SearchTypeHybrid   SearchType = config.SearchTypeHybrid
)

// Backend tags which generation implementation serves a request.
type Backend string

const (
	BackendGemini  Backend = config.BackendNameGemini
	BackendBedrock Backend = config.BackendNameBedrock
)

func BackendFor(useBedrockLLM bool) Backend {
	if useBedrockLLM {
		return BackendBedrock
	}
	return BackendGemini
}

type RetrievedChunk struct {
	Text      string         `json:"text"`
	Score     float64        `json:"score"`
	SourceURI string         `json:"source,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type Answer struct {
	Text    string
	Chunks  []RetrievedChunk
	Backend Backend
}

// SamplingParams are forwarded to the model as given. The remote API owns the valid ranges.
type SamplingParams struct {
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
}

// RetrievalParams shape one knowledge base query.
type RetrievalParams struct {
	TopK           int
	SearchType     SearchType
	Reranking      bool
	MetadataFilter *MetadataFilter
}

// RequestConfig holds the per request tunables of /ask.
type RequestConfig struct {
	Retrieval     RetrievalParams
	Sampling      SamplingParams
	UseBedrockLLM bool
}

func DefaultRequestConfig(useBedrockLLM bool) RequestConfig {
	return RequestConfig{
		Retrieval: RetrievalParams{
			TopK:       config.DefaultTopK,
			SearchType: SearchType(config.DefaultSearchType),
		},
		Sampling: SamplingParams{
			Temperature: config.DefaultTemperature,
			TopP:        config.DefaultTopP,
			TopK:        config.DefaultLLMTopK,
			MaxTokens:   config.DefaultMaxTokens,
		},
		UseBedrockLLM: useBedrockLLM,
	}
}

func (c RequestConfig) Backend() Backend {
	return BackendFor(c.UseBedrockLLM)
}
