package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD              = slog.LevelInfo
	TRACE_ID_KEY                = "traceId"
	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10

	//serverTimeouts
	ReadTimeout            = 30 * time.Second
	WriteTimeout           = 120 * time.Second //generation can be slow
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	DefaultPort = 8001

	//uploads
	MaxUploadSize         = 32 << 20 //32mb
	DocumentPrefix        = "documents/"
	MetadataSidecarSuffix = ".metadata.json"
	UploadFormField       = "files"
	MetadataFormField     = "metadata"

	//remote call budgets - the remote services own retries, we only bound the wait
	StorageCallTimeout    = 60 * time.Second
	IngestionCallTimeout  = 15 * time.Second
	RetrievalCallTimeout  = 30 * time.Second
	GenerationCallTimeout = 90 * time.Second
	HealthCheckTimeout    = 5 * time.Second

	//polling - caller side only (kbsync), the server never loops
	DefaultPollInterval = 5 * time.Second
	DefaultPollTimeout  = 15 * time.Minute

	//aws
	DefaultAWSRegion      = "us-east-1"
	RerankingModelArnTmpl = "arn:aws:bedrock:%s::foundation-model/amazon.rerank-v1:0"

	//llm
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultBedrockModelID = "anthropic.claude-3-sonnet-20240229-v1:0"
	PromptTemplate        = "Use the following context to answer the question clearly.\n\nContext:\n%s\n\nQuestion: %s\nAnswer:"
	DefaultTopK           = 4
	MaxTopK               = 100
	DefaultSearchType     = "SEMANTIC"
	DefaultTemperature    = 1.0
	DefaultTopP           = 0.95
	DefaultLLMTopK        = 40
	DefaultMaxTokens      = 1024
	SearchTypeSemantic    = "SEMANTIC"
	SearchTypeHybrid      = "HYBRID"
	BackendNameGemini     = "gemini"
	BackendNameBedrock    = "bedrock"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis - only used for shared rate limit windows
	RedisRateLimitDB     = 0
	RedisRateLimitPrefix = "ratelimit:"
	RedisDialTimeout     = 3 * time.Second

	//local limiter forgets an ip after this long without requests
	LimiterIdleTimeout = 10 * time.Minute
)
