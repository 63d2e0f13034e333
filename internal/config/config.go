// Package config provides configuration loading and validation for the CLI
// and server. Values come from environment variables (a .env file is loaded
// by main) and are read once at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for every tunable. Hosted deployments are expected to set
// JOBIFY_ADVISORY_ENABLED=false; nothing in the code branches on
// environment identity.
const (
	DefaultFeedURL         = "https://weworkremotely.com/remote-jobs.rss"
	DefaultDataFile        = "wwr_tech_jobs.csv"
	DefaultTopK            = 10
	DefaultFetchTimeout    = 30 * time.Second
	DefaultAdvisoryTimeout = 120 * time.Second
	DefaultOllamaURL       = "http://localhost:11434/api/generate"
	DefaultOllamaModel     = "qwen2.5:7b-instruct"
	DefaultContextBudget   = 2048
	DefaultPort            = 8080
)

// Config is the full runtime configuration.
type Config struct {
	FeedURL         string        `validate:"required,url"`
	DataFile        string        `validate:"required"`
	TopK            int           `validate:"gt=0"`
	FetchTimeout    time.Duration `validate:"gt=0"`
	AdvisoryEnabled bool
	OllamaURL       string        `validate:"required,url"`
	OllamaModel     string        `validate:"required"`
	AdvisoryTimeout time.Duration `validate:"gt=0"`
	ContextBudget   int           `validate:"gt=0"`
	Port            int           `validate:"gt=0,lte=65535"`
}

// Load reads configuration from the environment, applies defaults, and
// validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		FeedURL:         getEnv("JOBIFY_FEED_URL", DefaultFeedURL),
		DataFile:        getEnv("JOBIFY_DATA_FILE", DefaultDataFile),
		TopK:            getEnvInt("JOBIFY_TOP_K", DefaultTopK),
		FetchTimeout:    getEnvDuration("JOBIFY_FETCH_TIMEOUT", DefaultFetchTimeout),
		AdvisoryEnabled: getEnvBool("JOBIFY_ADVISORY_ENABLED", true),
		OllamaURL:       getEnv("JOBIFY_OLLAMA_URL", DefaultOllamaURL),
		OllamaModel:     getEnv("JOBIFY_OLLAMA_MODEL", DefaultOllamaModel),
		AdvisoryTimeout: getEnvDuration("JOBIFY_ADVISORY_TIMEOUT", DefaultAdvisoryTimeout),
		ContextBudget:   getEnvInt("JOBIFY_CONTEXT_BUDGET", DefaultContextBudget),
		Port:            getEnvInt("JOBIFY_PORT", DefaultPort),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
