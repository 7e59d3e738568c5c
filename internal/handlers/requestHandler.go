package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/akolanti/RagWeb/internal/adapter"
	"github.com/akolanti/RagWeb/internal/api"
	"github.com/akolanti/RagWeb/internal/config"
)

// AskHandler godoc
// @Summary      Answer a question from the knowledge base
// @Description  Retrieves top_k chunks from the knowledge base and asks the selected LLM backend to answer using them as context.
// @Tags         RAG
// @Accept       json
// @Produce      json
// @Param        request  body      api.AskRequest  true  "Question plus optional retrieval and sampling parameters"
// @Success      200      {object}  api.AskResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing question or out of range parameter"
// @Failure      500      {object}  api.ErrorResponse  "Knowledge base or LLM backend not configured"
// @Failure      502      {object}  api.ErrorResponse  "Retrieval or generation call failed"
// @Router       /ask [post]
func (h *Handler) AskHandler(w http.ResponseWriter, r *http.Request) {
	var req api.AskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if err := h.validateStruct(req); err != nil {
		writeError(w, r, err)
		return
	}

	cfg, err := adapter.ToRequestConfig(req, h.settings.UseBedrockLLM)
	if err != nil {
		writeError(w, r, err)
		return
	}

	answer, err := h.rag.Answer(r.Context(), req.Question, cfg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToAskResponse(req.Question, cfg, answer))
}

// HealthHandler godoc
// @Summary      Health and configuration summary
// @Description  Always 200. Document count and last ingestion are best effort and omitted when the lookup fails.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	res := api.HealthResponse{
		Status:                   "healthy",
		KnowledgeBaseConfigured:  h.settings.KnowledgeBaseID != "",
		DataSourceConfigured:     h.settings.DataSourceID != "",
		S3BucketConfigured:       h.settings.S3BucketName != "",
		AWSCredentialsConfigured: h.awsCreds,
		LLM:                      h.settings.LLMBackendName(),
		LLMConfigured:            h.llmConfigured,
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.HealthCheckTimeout)
	defer cancel()
	log := logRH.WithTrace(r.Context())

	if res.S3BucketConfigured {
		if count, err := h.ingestion.DocumentCount(ctx); err == nil {
			res.DocumentCount = &count
		} else {
			log.Warn("health: document count unavailable", "error", err)
		}
	}
	if res.KnowledgeBaseConfigured && res.DataSourceConfigured {
		if job, found, err := h.ingestion.LatestStatus(ctx); err == nil {
			res.LastIngestion = adapter.ToLastIngestion(job, found)
		} else {
			log.Warn("health: latest ingestion unavailable", "error", err)
		}
	}
	writeJsonResponse(w, http.StatusOK, res)
}
