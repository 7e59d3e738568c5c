package api

import "time"

type ErrorResponse struct {
	Error   OutgoingError `json:"error"`
	TraceId string        `json:"trace_id,omitempty" example:"4f1c2d9e-8b1a-4c55-9d7e-2a3b4c5d6e7f"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"question: is required"`
	Retry   bool   `json:"can_retry" example:"false"`
}

// uploads---------------------

type UploadedFile struct {
	Filename string `json:"filename" example:"notes.txt"`
	Key      string `json:"key,omitempty" example:"documents/notes.txt"`
	Error    string `json:"error,omitempty"`
}

type UploadResponse struct {
	Files           []UploadedFile `json:"files"`
	Uploaded        []string       `json:"uploaded"`
	IngestionJobId  string         `json:"ingestion_job_id,omitempty" example:"ABCDEF1234"`
	IngestionStatus string         `json:"ingestion_status,omitempty" example:"STARTING"`
	Message         string         `json:"message,omitempty"`
	Warning         string         `json:"warning,omitempty"`
}

// ingestion---------------------

type SyncResponse struct {
	IngestionJobId string `json:"ingestion_job_id" example:"ABCDEF1234"`
	Status         string `json:"status" example:"STARTING"`
	Message        string `json:"message"`
}

type SyncStatusResponse struct {
	Status    string     `json:"status" example:"COMPLETE"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type JobStatistics struct {
	DocumentsScanned  int64 `json:"documents_scanned"`
	DocumentsIndexed  int64 `json:"documents_indexed"`
	DocumentsModified int64 `json:"documents_modified"`
	DocumentsDeleted  int64 `json:"documents_deleted"`
	DocumentsFailed   int64 `json:"documents_failed"`
}

type IngestionStatusResponse struct {
	JobId          string         `json:"job_id" example:"ABCDEF1234"`
	Status         string         `json:"status" example:"IN_PROGRESS"`
	StartedAt      *time.Time     `json:"started_at,omitempty"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
	FailureReasons []string       `json:"failure_reasons"`
	Statistics     *JobStatistics `json:"statistics,omitempty"`
}

// ask---------------------

// AskRequest fields left out of the body take the documented defaults.
type AskRequest struct {
	Question       string         `json:"question" validate:"required" example:"What is retrieval augmented generation?"`
	TopK           *int           `json:"top_k,omitempty" validate:"omitempty,min=1,max=100" example:"4"`
	SearchType     string         `json:"search_type,omitempty" validate:"omitempty,oneof=SEMANTIC HYBRID" example:"SEMANTIC"`
	Reranking      bool           `json:"reranking" example:"false"`
	MetadataFilter map[string]any `json:"metadata_filter,omitempty" swaggertype:"object"`
	Temperature    *float64       `json:"temperature,omitempty" example:"1.0"`
	TopP           *float64       `json:"top_p,omitempty" example:"0.95"`
	LLMTopK        *int           `json:"llm_top_k,omitempty" example:"40"`
	MaxTokens      *int           `json:"max_tokens,omitempty" example:"1024"`
	UseBedrockLLM  *bool          `json:"use_bedrock_llm,omitempty" example:"false"`
}

type Chunk struct {
	Text     string         `json:"text"`
	Score    float64        `json:"score"`
	Source   string         `json:"source,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type AskResponse struct {
	Question   string   `json:"question"`
	TopK       int      `json:"top_k"`
	SearchType string   `json:"search_type"`
	Reranking  bool     `json:"reranking"`
	Backend    string   `json:"backend" example:"gemini"`
	Context    []string `json:"context"`
	Chunks     []Chunk  `json:"chunks"`
	Answer     string   `json:"answer"`
}

// health---------------------

type LastIngestion struct {
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

type HealthResponse struct {
	Status                   string         `json:"status" example:"healthy"`
	DocumentCount            *int           `json:"document_count"`
	KnowledgeBaseConfigured  bool           `json:"knowledge_base_configured"`
	DataSourceConfigured     bool           `json:"data_source_configured"`
	S3BucketConfigured       bool           `json:"s3_bucket_configured"`
	AWSCredentialsConfigured bool           `json:"aws_credentials_configured"`
	LLM                      string         `json:"llm" example:"gemini"`
	LLMConfigured            bool           `json:"llm_configured"`
	LastIngestion            *LastIngestion `json:"last_ingestion,omitempty"`
}
