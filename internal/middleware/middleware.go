package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/RagWeb/internal/handlers"
	"github.com/akolanti/RagWeb/internal/metrics"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
	traceId    string
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

type Middleware struct {
	limiter Limiter
}

func New(limiter Limiter) *Middleware {
	return &Middleware{limiter: limiter}
}

// Wrap runs trace injection and rate limiting before next and records the request metric after it.
func (m *Middleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}
		re := m.processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
		} else {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(routePattern(r), strconv.Itoa(rec.Status)).Inc()
	}
}

func (m *Middleware) processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re.logger.Info("New request received", "method", re.req.Method, "path", re.req.URL.Path)
	return m.rateLimiter(re)
}

// routePattern keeps path params out of the metric labels.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func handleBadRequest(re requestResponseStruct) {
	re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", remoteIP(re.req))
	handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, re.traceId, re.badRequest.errorMessage)
}
