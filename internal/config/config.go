// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	DatabasePath string
	JWTSecretKey string

	// Embedding provider
	EmbeddingAPIKey  string
	EmbeddingBaseURL string
	EmbeddingModel   string

	// Chat completion provider
	LLMAPIKey  string
	LLMBaseURL string
	ChatModel  string

	RetrievalTopK int
	Environment   string
}

// Load reads configuration from environment variables or a .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DatabasePath:     getEnv("DATABASE_PATH", "bizchat.db"),
		JWTSecretKey:     getEnv("JWT_SECRET_KEY", ""),
		EmbeddingAPIKey:  getEnv("AI_EMBEDDING_KEY", ""),
		EmbeddingBaseURL: getEnv("AI_EMBEDDING_BASE_URL", ""),
		EmbeddingModel:   getEnv("AI_EMBEDDING_MODEL", "text-embedding-3-small"),
		LLMAPIKey:        getEnv("AI_LLM_KEY", ""),
		LLMBaseURL:       getEnv("AI_LLM_BASE_URL", ""),
		ChatModel:        getEnv("AI_CHAT_MODEL", "gpt-4o-mini"),
		RetrievalTopK:    getEnvAsInt("RETRIEVAL_TOPK", 6),
		Environment:      env,
	}

	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if cfg.EmbeddingAPIKey == "" {
			missing = append(missing, "AI_EMBEDDING_KEY")
		}
		if cfg.LLMAPIKey == "" {
			missing = append(missing, "AI_LLM_KEY")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
