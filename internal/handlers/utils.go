package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/akolanti/RagWeb/internal/adapter"
	"github.com/akolanti/RagWeb/internal/config"
	"github.com/akolanti/RagWeb/internal/domain/appErrors"
	"github.com/go-playground/validator/v10"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// status is already sent
		logRH.Error("Error encoding response", "error", err)
	}
}

// WriteErrorResponse is used by the middleware for failures that never reach a handler.
func WriteErrorResponse(w http.ResponseWriter, httpCode int, traceId string, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(message, httpCode, traceId))
}

// writeError maps an orchestrator error onto the shared error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := appErrors.HTTPStatus(err)
	log := logRH.WithTrace(r.Context()).With("path", r.URL.Path, "status", status)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Warn("request rejected", "error", err)
	}
	writeJsonResponse(w, status, adapter.ToErrorResponse(err, traceId(r)))
}

func traceId(r *http.Request) string {
	id, _ := r.Context().Value(config.TRACE_ID_KEY).(string)
	return id
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// report json names, not go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func (h *Handler) validateStruct(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Validation("", "%v", err)
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return appErrors.Validation(first.Field(), "is required")
	case "min":
		return appErrors.Validation(first.Field(), "must be at least %s", first.Param())
	case "max":
		return appErrors.Validation(first.Field(), "must be at most %s", first.Param())
	case "oneof":
		return appErrors.Validation(first.Field(), "must be one of %s", strings.ReplaceAll(first.Param(), " ", ", "))
	default:
		return appErrors.Validation(first.Field(), "failed %s", first.Tag())
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return appErrors.Validation("body", "invalid JSON: %v", err)
	}
	return nil
}
