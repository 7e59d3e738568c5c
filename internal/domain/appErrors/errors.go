package appErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is bad caller input. Always raised before any remote call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigurationError means a required setting is absent.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not configured", e.Setting)
}

type Service string

const (
	ServiceStorage    Service = "storage"
	ServiceIngestion  Service = "ingestion"
	ServiceRetrieval  Service = "retrieval"
	ServiceGeneration Service = "generation"
)

// RemoteServiceError wraps a failed call to one of the managed services.
// The upstream message is kept so callers can diagnose it.
type RemoteServiceError struct {
	Service   Service
	Operation string
	NotFound  bool
	Err       error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Operation, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

func Validation(field string, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func MissingSetting(setting string) error {
	return &ConfigurationError{Setting: setting}
}

func Remote(service Service, operation string, err error) error {
	return &RemoteServiceError{Service: service, Operation: operation, Err: err}
}

func RemoteNotFound(service Service, operation string, err error) error {
	return &RemoteServiceError{Service: service, Operation: operation, NotFound: true, Err: err}
}

// HTTPStatus maps an error from the orchestrators to the status the HTTP surface reports.
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	var configErr *ConfigurationError
	var remoteErr *RemoteServiceError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	case errors.As(err, &remoteErr):
		if remoteErr.NotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// CanRetry is true for failures where re-submitting the same request may succeed.
func CanRetry(err error) bool {
	var remoteErr *RemoteServiceError
	return errors.As(err, &remoteErr) && !remoteErr.NotFound
}
