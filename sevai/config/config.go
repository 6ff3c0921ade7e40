package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SessionDriver string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration

	LLMProvider  string // "gemini" or "openai"
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	LLMTimeout   time.Duration

	JWTSecret string

	AlertWebhookURL string

	LocaleFile string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
}

func LoadConfig() Config {
	// Local development reads a .env file; in deployment the variables
	// come from the environment directly.
	_ = godotenv.Load()

	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", ""),

		SessionDriver: getEnv("SESSION_DRIVER", "memory"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SessionTTL:    getDuration("SESSION_TTL_HOURS", 24) * time.Hour,

		LLMProvider:  getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LLMTimeout:   getDuration("LLM_TIMEOUT_SECONDS", 20) * time.Second,

		JWTSecret: getEnv("JWT_SECRET", ""),

		AlertWebhookURL: getEnv("ALERT_WEBHOOK_URL", ""),

		LocaleFile: getEnv("LOCALE_FILE", ""),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "sevai-assessments"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback int64) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(fallback)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Duration(fallback)
	}
	return time.Duration(n)
}
