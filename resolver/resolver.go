package resolver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"summarize/types"
)

// Extractor fetches the readable content behind a validated URL.
type Extractor interface {
	Extract(ctx context.Context, target string) (title, body string, err error)
}

// Resolver turns an ArticleReference into concrete content. References that
// carry their own body resolve without touching the network; URL references
// go through the configured extractor. Resolution happens exactly once per
// request, at pipeline entry.
type Resolver struct {
	extractor Extractor
}

func New(extractor Extractor) *Resolver {
	return &Resolver{extractor: extractor}
}

// Resolve validates the reference and produces its content. Malformed
// references fail with types.ErrInvalidReference; URL references whose
// content cannot be extracted fail with types.ErrExtractionFailed. No
// retries at this layer.
func (r *Resolver) Resolve(ctx context.Context, ref types.ArticleReference) (types.ResolvedContent, error) {
	if ref.IsDirect() {
		return r.resolveDirect(ref)
	}
	return r.resolveURL(ctx, ref)
}

func (r *Resolver) resolveDirect(ref types.ArticleReference) (types.ResolvedContent, error) {
	rc := types.ResolvedContent{
		Title: strings.TrimSpace(ref.Title),
		Body:  ref.Body,
		Mode:  types.ModeContent,
	}
	if ref.URL != "" {
		target, err := validateURL(ref.URL)
		if err != nil {
			return types.ResolvedContent{}, err
		}
		rc.URL = target
	}
	return rc, nil
}

func (r *Resolver) resolveURL(ctx context.Context, ref types.ArticleReference) (types.ResolvedContent, error) {
	target, err := validateURL(ref.URL)
	if err != nil {
		return types.ResolvedContent{}, err
	}

	title, body, err := r.extractor.Extract(ctx, target)
	if err != nil {
		return types.ResolvedContent{}, err
	}
	if strings.TrimSpace(body) == "" {
		return types.ResolvedContent{}, fmt.Errorf("%w: %s: no readable content", types.ErrExtractionFailed, target)
	}

	if strings.TrimSpace(title) == "" {
		title = strings.TrimSpace(ref.Title)
	}
	if title == "" {
		// Listing rows need something; the bare URL reads fine.
		title = strings.TrimPrefix(target, "https://")
	}

	return types.ResolvedContent{
		Title: title,
		Body:  body,
		URL:   target,
		Mode:  types.ModeURL,
	}, nil
}

// validateURL normalizes and checks a submitted URL. A missing scheme gets
// https prefixed so bare "example.com/article" inputs work; the result must
// be an absolute https URL with a host.
func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty url", types.ErrInvalidReference)
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidReference, err)
	}
	if !strings.EqualFold(u.Scheme, "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute https url", types.ErrInvalidReference, raw)
	}
	return u.String(), nil
}
