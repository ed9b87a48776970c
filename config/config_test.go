package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so ambient shell state cannot
// leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGINS",
		"S3_BUCKET", "S3_REGION", "S3_PROFILE", "S3_ENDPOINT", "S3_USE_PATH_STYLE", "S3_PREFIX",
		"SUMMARIZER_PROVIDER", "SUMMARIZER_MODEL", "SUMMARIZER_MAX_TOKENS", "SUMMARIZER_TIMEOUT_SECONDS",
		"ANTHROPIC_API_KEY", "CLAUDE_API_KEY", "COHERE_API_KEY", "OPENAI_API_KEY",
		"MAX_CONTENT_BYTES", "EXTRACTOR_URL", "EXTRACTOR_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "summaries")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q; want 8080", cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v; want empty", cfg.Server.AllowedOrigins)
	}
	if cfg.Summarizer.Provider != "" || cfg.Summarizer.MaxTokens != 0 || cfg.Summarizer.Timeout != 0 {
		t.Errorf("Summarizer = %+v; want zero values for provider defaults", cfg.Summarizer)
	}
	if cfg.Summarizer.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.Summarizer.APIKey)
	}
}

func TestLoadFullEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("S3_BUCKET", "summaries")
	t.Setenv("S3_REGION", "ap-southeast-1")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_USE_PATH_STYLE", "TRUE")
	t.Setenv("S3_PREFIX", "/prod/")
	t.Setenv("SUMMARIZER_PROVIDER", "Cohere")
	t.Setenv("SUMMARIZER_MODEL", "command-r")
	t.Setenv("SUMMARIZER_MAX_TOKENS", "2048")
	t.Setenv("SUMMARIZER_TIMEOUT_SECONDS", "60")
	t.Setenv("COHERE_API_KEY", "co-test")
	t.Setenv("MAX_CONTENT_BYTES", "100000")
	t.Setenv("EXTRACTOR_URL", "http://reader:3000/extract")
	t.Setenv("EXTRACTOR_TIMEOUT_SECONDS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if strings.Join(cfg.Server.AllowedOrigins, "|") != "https://a.example|https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if !cfg.S3.UsePathStyle || cfg.S3.Prefix != "prod" {
		t.Errorf("S3 = %+v", cfg.S3)
	}
	if cfg.Summarizer.Provider != "cohere" || cfg.Summarizer.APIKey != "co-test" {
		t.Errorf("Summarizer = %+v", cfg.Summarizer)
	}
	if cfg.Summarizer.MaxTokens != 2048 || cfg.Summarizer.Timeout != 60*time.Second {
		t.Errorf("Summarizer limits = %+v", cfg.Summarizer)
	}
	if cfg.Summarizer.MaxBytes != 100000 {
		t.Errorf("MaxBytes = %d", cfg.Summarizer.MaxBytes)
	}
	if cfg.Extractor.URL != "http://reader:3000/extract" || cfg.Extractor.Timeout != 10*time.Second {
		t.Errorf("Extractor = %+v", cfg.Extractor)
	}
}

func TestLoadClaudeKeyAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "summaries")
	t.Setenv("CLAUDE_API_KEY", "sk-alias")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Summarizer.APIKey != "sk-alias" {
		t.Errorf("APIKey = %q; want CLAUDE_API_KEY alias value", cfg.Summarizer.APIKey)
	}
}

func TestLoadMissingBucket(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "S3_BUCKET") {
		t.Fatalf("err = %v; want S3_BUCKET requirement", err)
	}
}

func TestLoadMissingProviderKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "summaries")
	t.Setenv("SUMMARIZER_PROVIDER", "openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-wrong-provider")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("err = %v; want OPENAI_API_KEY requirement", err)
	}
}

func TestLoadBadInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "summaries")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("SUMMARIZER_MAX_TOKENS", "lots")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SUMMARIZER_MAX_TOKENS") {
		t.Fatalf("err = %v; want SUMMARIZER_MAX_TOKENS complaint", err)
	}
}
