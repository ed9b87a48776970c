// Package summarizer turns extracted article content into Markdown summaries
// through hosted LLM APIs. All providers share one prompt contract and one
// failure taxonomy; callers select a provider by name.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"summarize/types"
)

// Client produces a Markdown summary for article content. Implementations
// make exactly one upstream attempt per call; retry policy belongs to the
// caller.
type Client interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// Defaults applied where Options fields are zero.
const (
	defaultMaxTokens   = 8192
	defaultTemperature = 0.3
	defaultTimeout     = 120 * time.Second
	defaultMaxBytes    = 600_000
)

// Options configures a provider. Zero fields fall back to defaults; BaseURL
// reroutes the provider endpoint for tests and proxies.
type Options struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxBytes    int
	BaseURL     string
}

func (o Options) withDefaults(model string) Options {
	if o.Model == "" {
		o.Model = model
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	if o.Temperature <= 0 {
		o.Temperature = defaultTemperature
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaultMaxBytes
	}
	return o
}

// New selects a provider by name. The empty name means anthropic.
func New(provider string, opts Options) (Client, error) {
	switch provider {
	case "", "anthropic":
		return NewAnthropic(opts), nil
	case "cohere":
		return NewCohere(opts), nil
	case "openai":
		return NewOpenAI(opts), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", provider)
	}
}

// summaryPrompt is the shared instruction template. The response contract is
// a Markdown summary wrapped in <summary> tags.
const summaryPrompt = `<content>%s</content>

Please transform this content into an in-depth technical narrative that combines technical depth with the personality and insights from the original conversation. Write for a knowledgeable audience that wants both rich technical detail and the human story behind the innovations.

When describing technical innovations, combine thorough technical explanation with the speaker's perspective on why these choices matter. Maintain the original voice and personality while diving deep into the most compelling technical aspects. Begin directly with the content.

Please think through this summary task step by step in your internal reasoning, then provide the final summary in a structured format.

Your response must be wrapped in summary tags like this:
<summary>
[Your technical summary here with these characteristics:]
Deliver:
- Detailed explanations of novel technical approaches and why they matter
- The speaker's insights and reasoning behind technical choices
- Specific examples and implementation details
- Real-world context and practical implications

Structure requirements:
- At most half an hour of reading time
- Clear Markdown formatting
- Flowing narrative with minimal bullet points
- Natural blend of technical depth and personal insights

Writing style:
- Detailed technical explanations that reveal underlying complexity
- Preserve interesting quotes and personal observations
- Explain what makes techniques "novel" or interesting
- Let the speaker's excitement and expertise shine through
- Balance technical depth with clear, engaging exposition
- Connected ideas rather than isolated points
</summary>`

func buildPrompt(content string) string {
	return fmt.Sprintf(summaryPrompt, content)
}

var summaryTagRe = regexp.MustCompile(`(?s)<summary>(.*?)</summary>`)

// extractSummary pulls the tagged summary out of a completion. Models
// occasionally drop the tags; the raw completion is still returned then,
// prefixed so the slip is visible in the stored artifact.
func extractSummary(response string) string {
	if m := summaryTagRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "[Failed to extract summary tags]\n\n" + response
}

// guardSize rejects content over the configured byte limit before any
// upstream call. Content is never silently truncated.
func guardSize(content string, maxBytes int) error {
	if maxBytes > 0 && len(content) > maxBytes {
		return fmt.Errorf("%w: %d bytes over the %d byte limit", types.ErrContentTooLarge, len(content), maxBytes)
	}
	return nil
}

// classifyStatus maps an upstream HTTP status to the failure taxonomy.
func classifyStatus(status int, provider string, err error) error {
	if status == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s: %v", types.ErrRateLimited, provider, err)
	}
	return fmt.Errorf("%w: %s: %v", types.ErrUpstreamError, provider, err)
}

// classifyTransport maps errors that never produced an upstream status.
func classifyTransport(err error, provider string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", types.ErrTimeout, provider, err)
	}
	return fmt.Errorf("%w: %s: %v", types.ErrUpstreamError, provider, err)
}
