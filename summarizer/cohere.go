package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"summarize/types"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	coherecore "github.com/cohere-ai/cohere-go/v2/core"
)

const defaultCohereModel = "command-r-plus"

// Cohere summarizes via the Cohere Chat API.
type Cohere struct {
	client *cohereclient.Client
	opts   Options
}

func NewCohere(opts Options) *Cohere {
	opts = opts.withDefaults(defaultCohereModel)

	clientOpts := []coherecore.RequestOption{
		cohereclient.WithToken(opts.APIKey),
		cohereclient.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
		cohereclient.WithMaxAttempts(1),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, cohereclient.WithBaseURL(opts.BaseURL))
	}
	return &Cohere{client: cohereclient.NewClient(clientOpts...), opts: opts}
}

func (c *Cohere) Summarize(ctx context.Context, content string) (string, error) {
	if err := guardSize(content, c.opts.MaxBytes); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	model := c.opts.Model
	temperature := c.opts.Temperature
	maxTokens := c.opts.MaxTokens
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:     buildPrompt(content),
		Model:       &model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return "", classifyCohereError(err)
	}

	if resp.Text == "" {
		return "", fmt.Errorf("%w: cohere: empty completion", types.ErrUpstreamError)
	}
	return extractSummary(resp.Text), nil
}

// classifyCohereError handles both the SDK's typed status errors and the
// generic APIError it uses for unmapped statuses.
func classifyCohereError(err error) error {
	var rateLimited *cohere.TooManyRequestsError
	if errors.As(err, &rateLimited) {
		return fmt.Errorf("%w: cohere: %v", types.ErrRateLimited, err)
	}

	var apiErr *coherecore.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.StatusCode, "cohere", err)
	}

	return classifyTransport(err, "cohere")
}
