package summarizer

import (
	"context"
	"errors"
	"fmt"

	"summarize/types"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAI summarizes via the OpenAI Chat Completions API.
type OpenAI struct {
	client *openai.Client
	opts   Options
}

func NewOpenAI(opts Options) *OpenAI {
	opts = opts.withDefaults(string(openai.ChatModelGPT4o))

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := openai.NewClient(reqOpts...)
	return &OpenAI{client: &client, opts: opts}
}

func (c *OpenAI) Summarize(ctx context.Context, content string) (string, error) {
	if err := guardSize(content, c.opts.MaxBytes); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.opts.Model),
		MaxCompletionTokens: openai.Int(int64(c.opts.MaxTokens)),
		Temperature:         openai.Float(c.opts.Temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(content)),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", classifyStatus(apiErr.StatusCode, "openai", err)
		}
		return "", classifyTransport(err, "openai")
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai: empty completion", types.ErrUpstreamError)
	}
	return extractSummary(resp.Choices[0].Message.Content), nil
}
