package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Model     ModelConfig
	Speech    SpeechConfig
	Knowledge KnowledgeConfig
	Storage   StorageConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

// ModelConfig selects and configures the generation backend. Provider is
// "ollama" (native /api/generate) or "openai" (any OpenAI-compatible server,
// which includes Ollama's /v1 endpoint).
type ModelConfig struct {
	Provider string
	BaseURL  string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// SpeechConfig holds Azure Speech credentials. An empty key or region
// disables the speech endpoints gracefully.
type SpeechConfig struct {
	Key      string
	Region   string
	Voice    string
	Language string
}

type KnowledgeConfig struct {
	Dir string
}

type StorageConfig struct {
	AudioDir string
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, plain environment variables work too (Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	modelTimeout, _ := strconv.Atoi(getEnv("MODEL_TIMEOUT", "60"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "mockmate"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(maxConns),
		},
		Model: ModelConfig{
			Provider: getEnv("MODEL_PROVIDER", "ollama"),
			BaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:    getEnv("OLLAMA_MODEL", "llama3.2"),
			APIKey:   getEnv("MODEL_API_KEY", ""),
			Timeout:  time.Duration(modelTimeout) * time.Second,
		},
		Speech: SpeechConfig{
			Key:      getEnv("AZURE_SPEECH_KEY", ""),
			Region:   getEnv("AZURE_SPEECH_REGION", ""),
			Voice:    getEnv("AZURE_SPEECH_VOICE", "en-US-TonyNeural"),
			Language: getEnv("AZURE_SPEECH_LANGUAGE", "en-US"),
		},
		Knowledge: KnowledgeConfig{
			Dir: getEnv("KNOWLEDGE_DIR", "data"),
		},
		Storage: StorageConfig{
			AudioDir: getEnv("AUDIO_DIR", "data/audio"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
