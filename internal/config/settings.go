package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings is the runtime configuration read from the environment.
// It is loaded once at startup and only read afterwards.
type Settings struct {
	AWSRegion       string
	KnowledgeBaseID string
	DataSourceID    string
	S3BucketName    string

	GeminiAPIKey string
	GeminiModel  string

	UseBedrockLLM  bool
	BedrockModelID string

	Port       int
	Debug      bool
	Production bool

	RedisAddr     string
	RedisPassword string
}

// Load reads an optional .env file and then the process environment.
// Values already present in the environment win over the .env file.
func Load(envFiles ...string) (Settings, error) {
	_ = godotenv.Load(envFiles...)
	return FromEnv(os.Getenv)
}

// FromEnv builds Settings from a lookup function so tests don't have to touch the process env.
func FromEnv(getenv func(string) string) (Settings, error) {
	s := Settings{
		AWSRegion:       valueOr(getenv("AWS_REGION"), DefaultAWSRegion),
		KnowledgeBaseID: strings.TrimSpace(getenv("KNOWLEDGE_BASE_ID")),
		DataSourceID:    strings.TrimSpace(getenv("DATA_SOURCE_ID")),
		S3BucketName:    strings.TrimSpace(getenv("S3_BUCKET_NAME")),
		GeminiAPIKey:    valueOr(getenv("GOOGLE_API_KEY"), getenv("GEMINI_API_KEY")),
		GeminiModel:     valueOr(getenv("GEMINI_MODEL"), DefaultGeminiModel),
		UseBedrockLLM:   parseBool(getenv("USE_BEDROCK_LLM"), false),
		BedrockModelID:  valueOr(getenv("BEDROCK_MODEL_ID"), DefaultBedrockModelID),
		Debug:           parseBool(getenv("DEBUG"), true),
		Production:      strings.EqualFold(getenv("APP_ENV"), "production"),
		RedisAddr:       strings.TrimSpace(getenv("REDIS_ADDR")),
		RedisPassword:   getenv("REDIS_PASSWORD"),
		Port:            DefaultPort,
	}

	if raw := strings.TrimSpace(getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return s, fmt.Errorf("invalid PORT %q", raw)
		}
		s.Port = port
	}
	return s, nil
}

func (s Settings) ListenAddr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// LLMBackendName is the default generation backend for requests that don't pick one.
func (s Settings) LLMBackendName() string {
	if s.UseBedrockLLM {
		return BackendNameBedrock
	}
	return BackendNameGemini
}

func valueOr(v string, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func parseBool(v string, fallback bool) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true") || v == "1"
}
