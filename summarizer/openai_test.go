package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"summarize/types"
)

func TestOpenAISummarize(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-01",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "<summary>OpenAI summary.</summary>"}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewOpenAI(Options{APIKey: "test-key", BaseURL: srv.URL})
	got, err := client.Summarize(context.Background(), "Plain body text.")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "OpenAI summary." {
		t.Fatalf("summary = %q", got)
	}

	if captured["model"] != "gpt-4o" {
		t.Fatalf("model = %v; want gpt-4o", captured["model"])
	}
	msgs := captured["messages"].([]any)
	text, _ := msgs[0].(map[string]any)["content"].(string)
	if !strings.Contains(text, "<content>Plain body text.</content>") {
		t.Fatalf("prompt does not wrap the content: %q", text)
	}
}

func TestOpenAIRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAI(Options{APIKey: "test-key", BaseURL: srv.URL})
	_, err := client.Summarize(context.Background(), "body")
	if !errors.Is(err, types.ErrRateLimited) {
		t.Fatalf("err = %v; want ErrRateLimited", err)
	}
}
