package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var documentsUploaded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_uploaded_total",
	Help: "Documents handled by /upload labelled by outcome",
}, []string{"outcome"})

var ingestionJobsStarted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ingestion_jobs_started_total",
	Help: "Knowledge base ingestion jobs started by this process",
})

var answersGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "answers_generated_total",
	Help: "Answers generated labelled by llm backend and outcome",
}, []string{"backend", "outcome"})

var retrievedChunks = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "retrieved_chunks",
	Help:    "Number of chunks returned per retrieval call.",
	Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 100},
})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 60},
}, []string{"service"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func IncrementDocumentsUploaded(outcome string) {
	documentsUploaded.WithLabelValues(outcome).Inc()
}

func IncrementIngestionJobsStarted() {
	ingestionJobsStarted.Inc()
}

func IncrementAnswersGenerated(backend string, outcome string) {
	answersGenerated.WithLabelValues(backend, outcome).Inc()
}

func ObserveRetrievedChunks(n int) {
	retrievedChunks.Observe(float64(n))
}
