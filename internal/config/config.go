package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Vector   VectorConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	IndexerLogFilePath string
	CorsAllowedOrigins string
	NatsURL            string
	EmbedTopicName     string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider       string // "lmstudio" or "ollama"
	LLMModel          string
	LMStudioBaseURL   string
	OllamaBaseURL     string
	EmbeddingProvider string // "lmstudio" or "ollama"
	EmbeddingModel    string
	Temperature       float64
	MaxTokens         int
	RetrievalTopK     int
}

type VectorConfig struct {
	EmbeddingDim    int
	ChunkSize       int
	ChunkOverlap    int
	HNSWM           int
	HNSWEfConstruct int
}

type StorageConfig struct {
	UploadDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			IndexerLogFilePath: getEnv("INDEXER_LOG_FILE_PATH", "logs/indexer.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			EmbedTopicName:     getEnv("EMBED_DOCUMENT_TOPIC_NAME", "EMBED_DOCUMENT_CONTENT"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "lmstudio"),
			LLMModel:          getEnv("LLM_MODEL", "local-llm-model"),
			LMStudioBaseURL:   getEnv("LMSTUDIO_API_URL", "http://localhost:1234/v1"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "lmstudio"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "local-embedding-model"),
			Temperature:       getEnvAsFloat("LLM_TEMPERATURE", 0.3),
			MaxTokens:         getEnvAsInt("LLM_MAX_TOKENS", 1000),
			RetrievalTopK:     getEnvAsInt("RETRIEVAL_TOP_K", 5),
		},
		Vector: VectorConfig{
			EmbeddingDim:    getEnvAsInt("EMBEDDING_DIM", 1536),
			ChunkSize:       getEnvAsInt("CHUNK_SIZE", 1000),
			ChunkOverlap:    getEnvAsInt("CHUNK_OVERLAP", 100),
			HNSWM:           getEnvAsInt("HNSW_M", 8),
			HNSWEfConstruct: getEnvAsInt("HNSW_EF_CONSTRUCTION", 200),
		},
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}
}

// Validate rejects impossible configurations at startup so the ingestion
// pipeline never has to handle them per call.
func (c *Config) Validate() error {
	if c.Vector.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Vector.ChunkSize)
	}
	if c.Vector.ChunkOverlap < 0 {
		return fmt.Errorf("chunk overlap must not be negative, got %d", c.Vector.ChunkOverlap)
	}
	if c.Vector.ChunkOverlap >= c.Vector.ChunkSize {
		return fmt.Errorf("chunk overlap (%d) must be smaller than chunk size (%d)",
			c.Vector.ChunkOverlap, c.Vector.ChunkSize)
	}
	if c.Vector.EmbeddingDim <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", c.Vector.EmbeddingDim)
	}
	if c.Ai.RetrievalTopK <= 0 {
		return fmt.Errorf("retrieval topK must be positive, got %d", c.Ai.RetrievalTopK)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
