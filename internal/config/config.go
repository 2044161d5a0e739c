package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	LLM    LLMConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	Env          string
	AllowOrigins string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type UploadConfig struct {
	MaxUploadSize int64
}

// LLMConfig controls how the summary call is made. The zero timeout leaves
// the provider transport default in place and one attempt means no retries.
type LLMConfig struct {
	Timeout     time.Duration
	MaxAttempts int
}

const DefaultModel = "gemini-2.0-flash-001"

var ErrMissingAPIKey = errors.New("GENAI_API_KEY is not set")

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("HOST", ""),
			Port:         getEnv("PORT", "8000"),
			Env:          getEnv("ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GENAI_API_KEY", ""),
			Model:  getEnv("GENAI_MODEL", DefaultModel),
		},
		Upload: UploadConfig{
			MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 32<<20),
		},
		LLM: LLMConfig{
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", "0s"),
			MaxAttempts: getEnvAsInt("LLM_MAX_ATTEMPTS", 1),
		},
	}
}

// Validate reports configuration the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("LLM_MAX_ATTEMPTS must be at least 1, got %d", c.LLM.MaxAttempts)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("LLM_TIMEOUT must not be negative, got %s", c.LLM.Timeout)
	}
	return nil
}

// IsDevelopment reports whether ENV selects the local development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Env, "development")
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
