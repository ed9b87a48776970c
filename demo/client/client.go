// Package client is a thin HTTP client for the summary service API,
// used by the demo TUI.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to a running summary service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new service client. The timeout is generous because a
// cold-cache summarize call waits on the upstream model.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 3 * time.Minute},
	}
}

// Summary is the service's wire form of a stored summary.
type Summary struct {
	Fingerprint string    `json:"fingerprint"`
	Title       string    `json:"title"`
	URL         string    `json:"url,omitempty"`
	Summary     string    `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
	CacheHit    bool      `json:"cache_hit"`
}

// RecencyEntry is one row of the /recent listing.
type RecencyEntry struct {
	Fingerprint string    `json:"fingerprint"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
}

// SummarizeURL submits an article URL for summarization and returns the
// cached or freshly generated summary.
func (c *Client) SummarizeURL(target string) (*Summary, error) {
	form := url.Values{}
	form.Set("url", target)
	return c.postSummarize(form)
}

// SummarizeContent submits article text directly.
func (c *Client) SummarizeContent(title, body string) (*Summary, error) {
	form := url.Values{}
	form.Set("title", title)
	form.Set("body", body)
	return c.postSummarize(form)
}

func (c *Client) postSummarize(form url.Values) (*Summary, error) {
	resp, err := c.httpClient.PostForm(c.baseURL+"/summarize", form)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var summary Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &summary, nil
}

// GetSummary fetches a stored summary by fingerprint.
func (c *Client) GetSummary(fingerprint string) (*Summary, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/summary/" + fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var summary Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &summary, nil
}

// Recent lists the most recently generated summaries.
func (c *Client) Recent(limit int) ([]RecencyEntry, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/recent?limit=" + strconv.Itoa(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var listing struct {
		Summaries []RecencyEntry `json:"summaries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return listing.Summaries, nil
}
