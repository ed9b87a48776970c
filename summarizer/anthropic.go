package summarizer

import (
	"context"
	"errors"
	"fmt"

	"summarize/types"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic summarizes via the Anthropic Messages API. It is the default
// provider.
type Anthropic struct {
	client *anthropic.Client
	opts   Options
}

func NewAnthropic(opts Options) *Anthropic {
	opts = opts.withDefaults(string(anthropic.ModelClaude3_5SonnetLatest))

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := anthropic.NewClient(reqOpts...)
	return &Anthropic{client: &client, opts: opts}
}

func (a *Anthropic) Summarize(ctx context.Context, content string) (string, error) {
	if err := guardSize(content, a.opts.MaxBytes); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.opts.Model),
		MaxTokens:   int64(a.opts.MaxTokens),
		Temperature: anthropic.Float(a.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(content))),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", classifyStatus(apiErr.StatusCode, "anthropic", err)
		}
		return "", classifyTransport(err, "anthropic")
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: anthropic: empty completion", types.ErrUpstreamError)
	}
	return extractSummary(resp.Content[0].Text), nil
}
