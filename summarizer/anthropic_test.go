package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"summarize/types"
)

func TestAnthropicSummarize(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-sonnet-latest",
			"content": [{"type": "text", "text": "<summary>## Heading\n\nThe short version.</summary>"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 20}
		}`))
	}))
	defer srv.Close()

	client := NewAnthropic(Options{APIKey: "test-key", BaseURL: srv.URL})
	got, err := client.Summarize(context.Background(), "Plain body text.")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "## Heading\n\nThe short version." {
		t.Fatalf("summary = %q", got)
	}

	if captured["model"] != "claude-3-5-sonnet-latest" {
		t.Fatalf("model = %v; want claude-3-5-sonnet-latest", captured["model"])
	}
	if captured["max_tokens"] != float64(8192) {
		t.Fatalf("max_tokens = %v; want 8192", captured["max_tokens"])
	}
	if captured["temperature"] != 0.3 {
		t.Fatalf("temperature = %v; want 0.3", captured["temperature"])
	}

	msgs, ok := captured["messages"].([]any)
	if !ok || len(msgs) != 1 {
		t.Fatalf("messages = %v; want a single user message", captured["messages"])
	}
	first := msgs[0].(map[string]any)
	if first["role"] != "user" {
		t.Fatalf("message role = %v; want user", first["role"])
	}
	text := first["content"].([]any)[0].(map[string]any)["text"].(string)
	if !strings.Contains(text, "<content>Plain body text.</content>") {
		t.Fatalf("prompt does not wrap the content: %q", text)
	}
}

func TestAnthropicRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type": "error", "error": {"type": "rate_limit_error", "message": "slow down"}}`))
	}))
	defer srv.Close()

	client := NewAnthropic(Options{APIKey: "test-key", BaseURL: srv.URL})
	_, err := client.Summarize(context.Background(), "body")
	if !errors.Is(err, types.ErrRateLimited) {
		t.Fatalf("err = %v; want ErrRateLimited", err)
	}
}

func TestAnthropicUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"type": "error", "error": {"type": "api_error", "message": "boom"}}`))
	}))
	defer srv.Close()

	client := NewAnthropic(Options{APIKey: "test-key", BaseURL: srv.URL})
	_, err := client.Summarize(context.Background(), "body")
	if !errors.Is(err, types.ErrUpstreamError) {
		t.Fatalf("err = %v; want ErrUpstreamError", err)
	}
}

func TestAnthropicTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewAnthropic(Options{APIKey: "test-key", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := client.Summarize(context.Background(), "body")
	if !errors.Is(err, types.ErrTimeout) {
		t.Fatalf("err = %v; want ErrTimeout", err)
	}
}

func TestAnthropicContentTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream called for oversized content")
	}))
	defer srv.Close()

	client := NewAnthropic(Options{APIKey: "test-key", BaseURL: srv.URL, MaxBytes: 16})
	_, err := client.Summarize(context.Background(), strings.Repeat("x", 32))
	if !errors.Is(err, types.ErrContentTooLarge) {
		t.Fatalf("err = %v; want ErrContentTooLarge", err)
	}
}
