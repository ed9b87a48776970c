// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	S3         S3Config
	Summarizer SummarizerConfig
	Extractor  ExtractorConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type S3Config struct {
	Bucket       string
	Region       string
	Profile      string
	Endpoint     string
	UsePathStyle bool
	Prefix       string
}

type SummarizerConfig struct {
	Provider  string
	Model     string
	APIKey    string
	MaxTokens int
	Timeout   time.Duration
	MaxBytes  int
}

type ExtractorConfig struct {
	URL     string
	Timeout time.Duration
}

// Load reads the environment and validates the result. Zero values in
// SummarizerConfig mean "use the provider defaults"; only settings the
// service cannot run without are required here.
func Load() (*Config, error) {
	maxTokens, err := intEnv("SUMMARIZER_MAX_TOKENS")
	if err != nil {
		return nil, err
	}
	maxBytes, err := intEnv("MAX_CONTENT_BYTES")
	if err != nil {
		return nil, err
	}
	summarizerTimeout, err := secondsEnv("SUMMARIZER_TIMEOUT_SECONDS")
	if err != nil {
		return nil, err
	}
	extractorTimeout, err := secondsEnv("EXTRACTOR_TIMEOUT_SECONDS")
	if err != nil {
		return nil, err
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("SUMMARIZER_PROVIDER")))
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		},
		S3: S3Config{
			Bucket:       strings.TrimSpace(os.Getenv("S3_BUCKET")),
			Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
			Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
			Endpoint:     strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
			UsePathStyle: boolEnv("S3_USE_PATH_STYLE"),
			Prefix:       strings.Trim(strings.TrimSpace(os.Getenv("S3_PREFIX")), "/"),
		},
		Summarizer: SummarizerConfig{
			Provider:  provider,
			Model:     strings.TrimSpace(os.Getenv("SUMMARIZER_MODEL")),
			APIKey:    apiKeyFor(provider),
			MaxTokens: maxTokens,
			Timeout:   summarizerTimeout,
			MaxBytes:  maxBytes,
		},
		Extractor: ExtractorConfig{
			URL:     strings.TrimSpace(os.Getenv("EXTRACTOR_URL")),
			Timeout: extractorTimeout,
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apiKeyFor picks the credential matching the provider. CLAUDE_API_KEY is
// an accepted alias for ANTHROPIC_API_KEY.
func apiKeyFor(provider string) string {
	switch provider {
	case "cohere":
		return strings.TrimSpace(os.Getenv("COHERE_API_KEY"))
	case "openai":
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	default:
		key := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
		if key == "" {
			key = strings.TrimSpace(os.Getenv("CLAUDE_API_KEY"))
		}
		return key
	}
}

func validate(cfg *Config) error {
	if cfg.S3.Bucket == "" {
		return fmt.Errorf("config: S3_BUCKET is required")
	}
	if cfg.Summarizer.APIKey == "" {
		switch cfg.Summarizer.Provider {
		case "cohere":
			return fmt.Errorf("config: COHERE_API_KEY is required for the cohere provider")
		case "openai":
			return fmt.Errorf("config: OPENAI_API_KEY is required for the openai provider")
		default:
			return fmt.Errorf("config: ANTHROPIC_API_KEY is required")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}

func secondsEnv(key string) (time.Duration, error) {
	n, err := intEnv(key)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func boolEnv(key string) bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "true")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
