package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// AI settings
	Provider      string // "openai" or "gemini"
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string // optional, for OpenAI-compatible endpoints
	GeminiAPIKey  string
	GeminiModel   string

	// Feed settings
	FeedsConfigPath string
	EntriesPerFeed  int

	// Pipeline settings
	WorkerCount     int
	MaxContentChars int // analysis prompt gets at most this many characters of body text

	// Output settings
	OutputPath string

	// App settings
	Debug          bool
	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		Provider:        ProviderOpenAI,
		OpenAIModel:     "gpt-4.1-mini",
		GeminiModel:     "gemini-1.5-flash",
		FeedsConfigPath: "configs/feeds.yaml",
		EntriesPerFeed:  5,
		WorkerCount:     10,
		MaxContentChars: 4000,
		OutputPath:      "news.json",
		RequestTimeout:  30 * time.Second,
	}

	// Load from environment
	if p := os.Getenv("AI_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	if m := os.Getenv("OPENAI_MODEL"); m != "" {
		cfg.OpenAIModel = m
	}
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		cfg.GeminiModel = m
	}

	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.OutputPath = getEnvOrDefault("OUTPUT_PATH", cfg.OutputPath)
	cfg.EntriesPerFeed = getEnvIntOrDefault("ENTRIES_PER_FEED", cfg.EntriesPerFeed)
	cfg.WorkerCount = getEnvIntOrDefault("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxContentChars = getEnvIntOrDefault("MAX_CONTENT_CHARS", cfg.MaxContentChars)

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

// Validate enforces the run preconditions. A missing credential for the
// selected provider aborts the run before any feed is touched.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	default:
		return fmt.Errorf("AI_PROVIDER must be %q or %q", ProviderOpenAI, ProviderGemini)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be positive")
	}
	if c.EntriesPerFeed < 1 {
		return fmt.Errorf("ENTRIES_PER_FEED must be positive")
	}
	return nil
}
