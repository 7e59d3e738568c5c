package bedrockKB

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/internal/rag/retrieval"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

type API interface {
	Retrieve(ctx context.Context, params *bedrockagentruntime.RetrieveInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveOutput, error)
}

type retriever struct {
	api             API
	knowledgeBaseId string
	region          string
	logger          *logger_i.Logger
}

// New returns a knowledge base retriever. region is used to build the rerank model ARN.
func New(api API, knowledgeBaseId string, region string) retrieval.Retriever {
	return &retriever{
		api:             api,
		knowledgeBaseId: knowledgeBaseId,
		region:          region,
		logger:          logger_i.NewLogger("bedrock_kb"),
	}
}

func (r *retriever) Retrieve(ctx context.Context, query string, params ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error) {
	if r.knowledgeBaseId == "" {
		return nil, appErrors.MissingSetting("KNOWLEDGE_BASE_ID")
	}
	log := r.logger.WithTrace(ctx)
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("kb_retrieve", time.Since(start)) }()

	vectorSearch, err := r.vectorSearchConfig(params)
	if err != nil {
		return nil, err
	}

	out, err := r.api.Retrieve(ctx, &bedrockagentruntime.RetrieveInput{
		KnowledgeBaseId: aws.String(r.knowledgeBaseId),
		RetrievalQuery:  &types.KnowledgeBaseQuery{Text: aws.String(query)},
		RetrievalConfiguration: &types.KnowledgeBaseRetrievalConfiguration{
			VectorSearchConfiguration: vectorSearch,
		},
	})
	if err != nil {
		log.Error("Retrieve failed", "error", err)
		return nil, appErrors.Remote(appErrors.ServiceRetrieval, "Retrieve", err)
	}

	chunks := make([]ragModel.RetrievedChunk, 0, len(out.RetrievalResults))
	for _, result := range out.RetrievalResults {
		chunks = append(chunks, toChunk(result))
	}
	log.Debug("Retrieved chunks", "count", len(chunks), "searchType", params.SearchType, "reranking", params.Reranking)
	return chunks, nil
}

func (r *retriever) vectorSearchConfig(params ragModel.RetrievalParams) (*types.KnowledgeBaseVectorSearchConfiguration, error) {
	cfg := &types.KnowledgeBaseVectorSearchConfiguration{
		NumberOfResults:    aws.Int32(int32(params.TopK)),
		OverrideSearchType: types.SearchType(params.SearchType),
	}
	if params.MetadataFilter != nil {
		filter, err := toFilter(*params.MetadataFilter)
		if err != nil {
			return nil, err
		}
		cfg.Filter = filter
	}
	if params.Reranking {
		cfg.RerankingConfiguration = &types.VectorSearchRerankingConfiguration{
			Type: types.VectorSearchRerankingConfigurationTypeBedrockRerankingModel,
			BedrockRerankingConfiguration: &types.VectorSearchBedrockRerankingConfiguration{
				ModelConfiguration: &types.VectorSearchBedrockRerankingModelConfiguration{
					ModelArn: aws.String(fmt.Sprintf(config.RerankingModelArnTmpl, r.region)),
				},
				NumberOfRerankedResults: aws.Int32(int32(params.TopK)),
			},
		}
	}
	return cfg, nil
}

func toFilter(f ragModel.MetadataFilter) (types.RetrievalFilter, error) {
	if f.IsGroup() {
		children := make([]types.RetrievalFilter, 0, len(f.Filters))
		for _, child := range f.Filters {
			converted, err := toFilter(child)
			if err != nil {
				return nil, err
			}
			children = append(children, converted)
		}
		if f.Operator == ragModel.FilterAndAll {
			return &types.RetrievalFilterMemberAndAll{Value: children}, nil
		}
		return &types.RetrievalFilterMemberOrAll{Value: children}, nil
	}

	attr := types.FilterAttribute{
		Key:   aws.String(f.Key),
		Value: document.NewLazyDocument(f.Value),
	}
	switch f.Operator {
	case ragModel.FilterEquals:
		return &types.RetrievalFilterMemberEquals{Value: attr}, nil
	case ragModel.FilterNotEquals:
		return &types.RetrievalFilterMemberNotEquals{Value: attr}, nil
	case ragModel.FilterGreaterThan:
		return &types.RetrievalFilterMemberGreaterThan{Value: attr}, nil
	case ragModel.FilterGreaterThanOrEquals:
		return &types.RetrievalFilterMemberGreaterThanOrEquals{Value: attr}, nil
	case ragModel.FilterLessThan:
		return &types.RetrievalFilterMemberLessThan{Value: attr}, nil
	case ragModel.FilterLessThanOrEquals:
		return &types.RetrievalFilterMemberLessThanOrEquals{Value: attr}, nil
	case ragModel.FilterIn:
		return &types.RetrievalFilterMemberIn{Value: attr}, nil
	case ragModel.FilterNotIn:
		return &types.RetrievalFilterMemberNotIn{Value: attr}, nil
	case ragModel.FilterStartsWith:
		return &types.RetrievalFilterMemberStartsWith{Value: attr}, nil
	case ragModel.FilterListContains:
		return &types.RetrievalFilterMemberListContains{Value: attr}, nil
	case ragModel.FilterStringContains:
		return &types.RetrievalFilterMemberStringContains{Value: attr}, nil
	}
	return nil, appErrors.Validation("metadata_filter", "unknown operator %q", f.Operator)
}

func toChunk(result types.KnowledgeBaseRetrievalResult) ragModel.RetrievedChunk {
	chunk := ragModel.RetrievedChunk{
		Score: aws.ToFloat64(result.Score),
	}
	if result.Content != nil {
		chunk.Text = aws.ToString(result.Content.Text)
	}
	if loc := result.Location; loc != nil {
		switch {
		case loc.S3Location != nil:
			chunk.SourceURI = aws.ToString(loc.S3Location.Uri)
		case loc.WebLocation != nil:
			chunk.SourceURI = aws.ToString(loc.WebLocation.Url)
		}
	}
	if len(result.Metadata) > 0 {
		chunk.Metadata = make(map[string]any, len(result.Metadata))
		for k, doc := range result.Metadata {
			if doc == nil {
				continue
			}
			var v any
			if err := doc.UnmarshalSmithyDocument(&v); err == nil {
				chunk.Metadata[k] = v
			}
		}
	}
	return chunk
}
