package retrieval

import (
	"context"

	"github.com/akolanti/RagWeb/internal/domain/ragModel"
)

// Retriever returns chunks in the order the knowledge base ranked them.
type Retriever interface {
	Retrieve(ctx context.Context, query string, params ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error)
}
