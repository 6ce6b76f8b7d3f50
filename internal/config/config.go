// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Pipeline    PipelineConfig
	Server      ServerConfig
	Twitter     TwitterConfig
}

// PipelineConfig holds trend pipeline configuration
type PipelineConfig struct {
	InputCSV    string
	OutputDir   string
	VocabFile   string
	TopN        int
	RecentWeeks int
	Sentiment   bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// TwitterConfig holds configuration for the fetch command
type TwitterConfig struct {
	BearerToken string
	MaxResults  int
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Pipeline: PipelineConfig{
			InputCSV:    getEnv("STYLEPULSE_INPUT_CSV", "data/sample_posts.csv"),
			OutputDir:   getEnv("STYLEPULSE_OUTPUT_DIR", "output"),
			VocabFile:   getEnv("STYLEPULSE_VOCAB_FILE", ""),
			TopN:        getEnvAsInt("STYLEPULSE_TOP_N", 5),
			RecentWeeks: getEnvAsInt("STYLEPULSE_RECENT_WEEKS", 2),
			Sentiment:   getEnvAsBool("STYLEPULSE_SENTIMENT", true),
		},
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Twitter: TwitterConfig{
			BearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),
			MaxResults:  getEnvAsInt("TWITTER_MAX_RESULTS", 100),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Pipeline.TopN <= 0 {
		return fmt.Errorf("STYLEPULSE_TOP_N must be positive, got %d", config.Pipeline.TopN)
	}
	if config.Pipeline.RecentWeeks <= 0 {
		return fmt.Errorf("STYLEPULSE_RECENT_WEEKS must be positive, got %d", config.Pipeline.RecentWeeks)
	}

	return nil
}

// Helper functions

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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
