package resolver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"summarize/types"
)

func TestHTTPExtractor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("url"); got != "https://example.com/post?id=1" {
			t.Errorf("extractor received url %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title": "Extracted Title", "markdown": "# Heading\n\nBody.", "content": "<p>Body.</p>"}`))
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL, time.Second)
	title, body, err := e.Extract(context.Background(), "https://example.com/post?id=1")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if title != "Extracted Title" {
		t.Fatalf("title = %q", title)
	}
	if body != "# Heading\n\nBody." {
		t.Fatalf("body = %q; want markdown preferred over content", body)
	}
}

func TestHTTPExtractorFallsBackToTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title": "T", "text_content": "plain text", "content": "<p>html</p>"}`))
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL, time.Second)
	_, body, err := e.Extract(context.Background(), "https://example.com/a")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if body != "plain text" {
		t.Fatalf("body = %q; want text_content", body)
	}
}

func TestHTTPExtractorNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no readable content", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL, time.Second)
	_, _, err := e.Extract(context.Background(), "https://example.com/a")
	if !errors.Is(err, types.ErrExtractionFailed) {
		t.Fatalf("err = %v; want ErrExtractionFailed", err)
	}
}

func TestHTTPExtractorBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL, time.Second)
	_, _, err := e.Extract(context.Background(), "https://example.com/a")
	if !errors.Is(err, types.ErrExtractionFailed) {
		t.Fatalf("err = %v; want ErrExtractionFailed", err)
	}
}

func TestHTTPExtractorUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	e := NewHTTPExtractor(srv.URL, 500*time.Millisecond)
	_, _, err := e.Extract(context.Background(), "https://example.com/a")
	if !errors.Is(err, types.ErrExtractionFailed) {
		t.Fatalf("err = %v; want ErrExtractionFailed", err)
	}
}
