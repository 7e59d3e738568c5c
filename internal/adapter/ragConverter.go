package adapter

import (
	"github.com/akolanti/RagWeb/internal/api"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
)

// ToRequestConfig fills everything the caller left out from the defaults.
// useBedrockDefault comes from the USE_BEDROCK_LLM setting.
func ToRequestConfig(req api.AskRequest, useBedrockDefault bool) (ragModel.RequestConfig, error) {
	useBedrock := useBedrockDefault
	if req.UseBedrockLLM != nil {
		useBedrock = *req.UseBedrockLLM
	}
	cfg := ragModel.DefaultRequestConfig(useBedrock)

	if req.TopK != nil {
		cfg.Retrieval.TopK = *req.TopK
	}
	if req.SearchType != "" {
		cfg.Retrieval.SearchType = ragModel.SearchType(req.SearchType)
	}
	cfg.Retrieval.Reranking = req.Reranking

	filter, err := ragModel.ParseMetadataFilter(req.MetadataFilter)
	if err != nil {
		return ragModel.RequestConfig{}, err
	}
	cfg.Retrieval.MetadataFilter = filter

	if req.Temperature != nil {
		cfg.Sampling.Temperature = *req.Temperature
	}
	if req.TopP != nil {
		cfg.Sampling.TopP = *req.TopP
	}
	if req.LLMTopK != nil {
		cfg.Sampling.TopK = *req.LLMTopK
	}
	if req.MaxTokens != nil {
		cfg.Sampling.MaxTokens = *req.MaxTokens
	}
	return cfg, nil
}

func ToAskResponse(question string, cfg ragModel.RequestConfig, answer ragModel.Answer) api.AskResponse {
	res := api.AskResponse{
		Question:   question,
		TopK:       cfg.Retrieval.TopK,
		SearchType: string(cfg.Retrieval.SearchType),
		Reranking:  cfg.Retrieval.Reranking,
		Backend:    string(answer.Backend),
		Context:    make([]string, 0, len(answer.Chunks)),
		Chunks:     make([]api.Chunk, 0, len(answer.Chunks)),
		Answer:     answer.Text,
	}
	for _, c := range answer.Chunks {
		res.Context = append(res.Context, c.Text)
		res.Chunks = append(res.Chunks, api.Chunk{
			Text:     c.Text,
			Score:    c.Score,
			Source:   c.SourceURI,
			Metadata: c.Metadata,
		})
	}
	return res
}
