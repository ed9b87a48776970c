// Package pipeline chains content resolution, fingerprinting, the artifact
// cache and the summarizer into the single summarize operation the API
// serves. The pipeline itself is stateless; all durable state lives in the
// artifact store.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"summarize/fingerprint"
	"summarize/types"
)

// ContentResolver turns an article reference into the text to summarize.
type ContentResolver interface {
	Resolve(ctx context.Context, ref types.ArticleReference) (types.ResolvedContent, error)
}

// Summarizer produces a Markdown summary for article content.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// ArtifactStore persists summary artifacts keyed by fingerprint.
type ArtifactStore interface {
	Get(ctx context.Context, fingerprint string) (*types.SummaryArtifact, error)
	Put(ctx context.Context, artifact types.SummaryArtifact) error
	ListRecent(ctx context.Context, limit int) ([]types.RecencyEntry, error)
}

// Result is the outcome of a summarize request.
type Result struct {
	Artifact types.SummaryArtifact
	CacheHit bool
}

// Pipeline holds the collaborators a summarize request flows through.
type Pipeline struct {
	resolver   ContentResolver
	store      ArtifactStore
	summarizer Summarizer
	logger     *slog.Logger
}

func New(resolver ContentResolver, store ArtifactStore, summarizer Summarizer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		resolver:   resolver,
		store:      store,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Summarize resolves ref and returns the cached artifact for its
// fingerprint, or generates, stores and returns a fresh one. A failed
// generation stores nothing, so the next identical request retries from
// scratch. Two concurrent requests for the same fingerprint may both
// generate; the store's overwrite makes that safe.
func (p *Pipeline) Summarize(ctx context.Context, ref types.ArticleReference) (Result, error) {
	start := time.Now()

	content, err := p.resolver.Resolve(ctx, ref)
	if err != nil {
		return Result{}, err
	}
	fp := fingerprint.New(content)

	cached, err := p.store.Get(ctx, fp)
	switch {
	case err == nil:
		p.logger.InfoContext(ctx, "cache hit",
			"fingerprint", fp,
			"duration_ms", time.Since(start).Milliseconds())
		return Result{Artifact: *cached, CacheHit: true}, nil
	case errors.Is(err, types.ErrNotFound):
	case errors.Is(err, types.ErrCorruptArtifact):
		// Regenerate over a corrupt artifact instead of failing the request.
		p.logger.WarnContext(ctx, "corrupt artifact, regenerating", "fingerprint", fp)
	default:
		return Result{}, fmt.Errorf("cache lookup: %w", err)
	}

	summary, err := p.summarizer.Summarize(ctx, content.Body)
	if err != nil {
		return Result{}, err
	}

	artifact := types.SummaryArtifact{
		Fingerprint: fp,
		Title:       content.Title,
		URL:         content.URL,
		Summary:     summary,
		CreatedAt:   time.Now().UTC(),
	}
	if err := p.store.Put(ctx, artifact); err != nil {
		return Result{}, fmt.Errorf("store artifact: %w", err)
	}

	p.logger.InfoContext(ctx, "cache miss",
		"fingerprint", fp,
		"mode", string(content.Mode),
		"content_bytes", len(content.Body),
		"duration_ms", time.Since(start).Milliseconds())
	return Result{Artifact: artifact, CacheHit: false}, nil
}

// Lookup returns the stored artifact for a fingerprint without resolving
// or generating anything.
func (p *Pipeline) Lookup(ctx context.Context, fp string) (*types.SummaryArtifact, error) {
	return p.store.Get(ctx, fp)
}

// Recent lists the most recently generated summaries, newest first.
func (p *Pipeline) Recent(ctx context.Context, limit int) ([]types.RecencyEntry, error) {
	return p.store.ListRecent(ctx, limit)
}
