package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestRequestIDGenerated(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header not set")
	}
}

func TestRequestIDEchoed(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestResponsesGzippedWhenAccepted(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/recent", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "summaries") {
		t.Fatalf("body = %s", body)
	}
}

func TestResponsesPlainWithoutAcceptEncoding(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/recent", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Header().Get("Content-Encoding"))
	if !strings.Contains(w.Body.String(), "summaries") {
		t.Fatalf("body = %s", w.Body.String())
	}
}
