package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/akolanti/RagWeb/internal/adapter"
	"github.com/akolanti/RagWeb/internal/adapter/utils"
	"github.com/akolanti/RagWeb/internal/api"
	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/internal/metrics"
)

// UploadHandler godoc
// @Summary      Upload documents and start ingestion
// @Description  Stores each file under documents/ in the S3 bucket, then starts a knowledge base ingestion job. Files with an unsupported extension are reported and skipped.
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        files     formData  file    true   "One or more documents (.txt .pdf .md .csv .html .htm .doc .docx)"
// @Param        metadata  formData  string  false  "JSON object of metadata attributes applied to every file"
// @Success      200  {object}  api.UploadResponse
// @Failure      400  {object}  api.ErrorResponse  "No valid files or bad metadata"
// @Failure      413  {object}  api.ErrorResponse  "Body larger than 32 MiB"
// @Failure      500  {object}  api.ErrorResponse  "S3 bucket not configured"
// @Failure      502  {object}  api.ErrorResponse  "S3 rejected every file"
// @Router       /upload [post]
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteErrorResponse(w, http.StatusRequestEntityTooLarge, traceId(r), "upload exceeds the 32 MiB limit")
			return
		}
		writeError(w, r, appErrors.Validation("body", "expected multipart/form-data: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[config.UploadFormField]
	if len(headers) == 0 {
		writeError(w, r, appErrors.Validation(config.UploadFormField, "send file(s) under the '%s' form field", config.UploadFormField))
		return
	}

	metadata, err := parseMetadataField(r.FormValue(config.MetadataFormField))
	if err != nil {
		writeError(w, r, err)
		return
	}

	res := api.UploadResponse{Files: make([]api.UploadedFile, 0, len(headers)), Uploaded: []string{}}
	valid := make([]*multipart.FileHeader, 0, len(headers))
	for _, fh := range headers {
		if err := ingestModel.ValidateDocumentName(fh.Filename); err != nil {
			metrics.IncrementDocumentsUploaded("rejected")
			res.Files = append(res.Files, api.UploadedFile{Filename: fh.Filename, Error: err.Error()})
			continue
		}
		valid = append(valid, fh)
	}
	if len(valid) == 0 {
		writeError(w, r, appErrors.Validation("files", "no valid files uploaded, allowed types: %s",
			strings.Join(ingestModel.AllowedExtensions(), ", ")))
		return
	}

	var lastErr error
	for _, fh := range valid {
		location, err := h.uploadOne(r, fh, metadata)
		if err != nil {
			var configErr *appErrors.ConfigurationError
			if errors.As(err, &configErr) {
				writeError(w, r, err)
				return
			}
			lastErr = err
			res.Files = append(res.Files, api.UploadedFile{Filename: fh.Filename, Error: err.Error()})
			continue
		}
		res.Files = append(res.Files, api.UploadedFile{Filename: fh.Filename, Key: location.Key})
		res.Uploaded = append(res.Uploaded, fh.Filename)
	}
	if len(res.Uploaded) == 0 {
		writeError(w, r, lastErr)
		return
	}

	job, err := h.ingestion.StartSync(r.Context())
	if err != nil {
		logRH.WithTrace(r.Context()).Warn("documents uploaded but ingestion did not start", "error", err)
		res.Warning = fmt.Sprintf("Documents uploaded but ingestion failed: %v", err)
		writeJsonResponse(w, http.StatusOK, res)
		return
	}
	res.IngestionJobId = job.Id
	res.IngestionStatus = string(job.Status)
	res.Message = "Documents uploaded. Ingestion started - this may take a few minutes."
	writeJsonResponse(w, http.StatusOK, res)
}

func (h *Handler) uploadOne(r *http.Request, fh *multipart.FileHeader, metadata map[string]any) (ingestModel.StorageLocation, error) {
	file, err := fh.Open()
	if err != nil {
		return ingestModel.StorageLocation{}, appErrors.Validation("files", "could not read %s", fh.Filename)
	}
	defer file.Close()

	return h.ingestion.Upload(r.Context(), ingestModel.Document{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
		Metadata:    metadata,
	})
}

func parseMetadataField(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil, appErrors.Validation(config.MetadataFormField, "must be a JSON object: %v", err)
	}
	return metadata, nil
}

// SyncHandler godoc
// @Summary      Start a knowledge base sync
// @Description  Starts an ingestion job for the configured data source. Poll /ingestion-status/{job_id} for progress.
// @Tags         Ingestion
// @Produce      json
// @Success      200  {object}  api.SyncResponse
// @Failure      500  {object}  api.ErrorResponse  "Knowledge base or data source not configured"
// @Failure      502  {object}  api.ErrorResponse  "Ingestion API call failed"
// @Router       /sync [post]
func (h *Handler) SyncHandler(w http.ResponseWriter, r *http.Request) {
	job, err := h.ingestion.StartSync(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToSyncResponse(job))
}

// SyncStatusHandler godoc
// @Summary      Latest ingestion job
// @Description  Status of the most recently started ingestion job, or no_jobs_found.
// @Tags         Ingestion
// @Produce      json
// @Success      200  {object}  api.SyncStatusResponse
// @Failure      502  {object}  api.ErrorResponse
// @Router       /sync/status [get]
func (h *Handler) SyncStatusHandler(w http.ResponseWriter, r *http.Request) {
	job, found, err := h.ingestion.LatestStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToSyncStatusResponse(job, found))
}

// IngestionStatusHandler godoc
// @Summary      Get ingestion job status
// @Description  One lookup of the job at the ingestion API. The server never polls, callers repeat this request.
// @Tags         Ingestion
// @Produce      json
// @Param        job_id  path      string  true  "Ingestion job id returned by /upload or /sync"
// @Success      200     {object}  api.IngestionStatusResponse
// @Failure      404     {object}  api.ErrorResponse  "Unknown job id"
// @Failure      502     {object}  api.ErrorResponse
// @Router       /ingestion-status/{job_id} [get]
func (h *Handler) IngestionStatusHandler(w http.ResponseWriter, r *http.Request) {
	jobId := utils.GetChiURLParam(r, "job_id")
	job, err := h.ingestion.PollStatus(r.Context(), jobId)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToIngestionStatusResponse(job))
}
