package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider selects the language-model backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

type Config struct {
	Port string

	// Backend selection
	Provider Provider

	// OpenAI
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Shared LLM settings
	LLMTimeout   time.Duration
	MaxTextChars int

	// Upload limits
	MaxUploadBytes int64
}

func Load() Config {
	return Config{
		Port: envOr("PORT", "8090"),

		Provider: Provider(envOr("AI_PROVIDER", string(ProviderOpenAI))),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-1.5-flash"),

		LLMTimeout:   envDuration("LLM_TIMEOUT", 120*time.Second),
		MaxTextChars: envInt("MAX_TEXT_CHARS", 8000),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
	}
}

// Validate rejects an unknown provider or a missing credential for the
// active one. A failure here blocks all processing.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q: use %q or %q", c.Provider, ProviderOpenAI, ProviderGemini)
	}
	if c.MaxTextChars <= 0 {
		return fmt.Errorf("MAX_TEXT_CHARS must be positive")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
