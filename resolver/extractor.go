package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"summarize/types"

	readability "github.com/go-shiori/go-readability"
)

const defaultExtractTimeout = 30 * time.Second

// HTTPExtractor delegates extraction to an external reader-view service:
// GET {endpoint}?url={target}, JSON response with title and content fields.
// One attempt, bounded by the client timeout.
type HTTPExtractor struct {
	endpoint string
	client   *http.Client
}

func NewHTTPExtractor(endpoint string, timeout time.Duration) *HTTPExtractor {
	if timeout <= 0 {
		timeout = defaultExtractTimeout
	}
	return &HTTPExtractor{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// readerView mirrors the extraction service response. Services differ in
// which content field they fill; markdown is preferred when present.
type readerView struct {
	Title       string `json:"title"`
	Markdown    string `json:"markdown"`
	TextContent string `json:"text_content"`
	Content     string `json:"content"`
}

func (v readerView) body() string {
	if v.Markdown != "" {
		return v.Markdown
	}
	if v.TextContent != "" {
		return v.TextContent
	}
	return v.Content
}

func (e *HTTPExtractor) Extract(ctx context.Context, target string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.endpoint+"?url="+url.QueryEscape(target), nil)
	if err != nil {
		return "", "", fmt.Errorf("%w: build extractor request: %v", types.ErrExtractionFailed, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", types.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("%w: extractor returned %d for %s", types.ErrExtractionFailed, resp.StatusCode, target)
	}

	var view readerView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return "", "", fmt.Errorf("%w: decode extractor response: %v", types.ErrExtractionFailed, err)
	}
	return view.Title, view.body(), nil
}

// ReadabilityExtractor fetches and extracts content in-process. It is the
// fallback when no external extraction service is configured.
type ReadabilityExtractor struct {
	timeout time.Duration
}

func NewReadabilityExtractor(timeout time.Duration) *ReadabilityExtractor {
	if timeout <= 0 {
		timeout = defaultExtractTimeout
	}
	return &ReadabilityExtractor{timeout: timeout}
}

func (e *ReadabilityExtractor) Extract(ctx context.Context, target string) (string, string, error) {
	article, err := readability.FromURL(target, e.timeout)
	if err != nil {
		return "", "", fmt.Errorf("%w: readability: %v", types.ErrExtractionFailed, err)
	}

	body := article.TextContent
	if body == "" {
		body = article.Content
	}
	return article.Title, body, nil
}
