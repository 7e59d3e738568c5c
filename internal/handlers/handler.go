package handlers

import (
	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/ingestion"
	"github.com/akolanti/RagWeb/internal/rag"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/go-playground/validator/v10"
)

var logRH = logger_i.NewLogger("request_handler")

// Dependencies is everything the handlers need, built once in main.
type Dependencies struct {
	Ingestion ingestion.Service
	RAG       rag.Service
	Settings  config.Settings
	// LLMConfigured reports whether the default backend has a client.
	LLMConfigured bool
	// AWSCredentials is whether the default credential chain resolved at startup.
	AWSCredentials bool
}

type Handler struct {
	ingestion     ingestion.Service
	rag           rag.Service
	settings      config.Settings
	llmConfigured bool
	awsCreds      bool
	validate      *validator.Validate
}

func New(deps Dependencies) *Handler {
	return &Handler{
		ingestion:     deps.Ingestion,
		rag:           deps.RAG,
		settings:      deps.Settings,
		llmConfigured: deps.LLMConfigured,
		awsCreds:      deps.AWSCredentials,
		validate:      newValidator(),
	}
}
