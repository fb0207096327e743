package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string

	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterBaseURL string
	LLMTimeoutSeconds int

	ExtractionWorkers   int
	ExtractionQueueSize int
	MinTextChars        int

	UploadDir string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:   getEnv("JWT_ISSUER", "resume-profiler"),

		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 60),

		ExtractionWorkers:   getEnvInt("EXTRACTION_WORKERS", 2),
		ExtractionQueueSize: getEnvInt("EXTRACTION_QUEUE_SIZE", 64),
		MinTextChars:        getEnvInt("MIN_TEXT_CHARS", 50),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
