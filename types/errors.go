package types

import "errors"

// Failure classes shared across the pipeline. Inner layers wrap these with
// context via fmt.Errorf("...: %w", ...); the API layer maps them to HTTP
// status codes with errors.Is.
var (
	// ErrInvalidReference marks a reference that is neither valid content
	// nor a fetchable https URL.
	ErrInvalidReference = errors.New("invalid article reference")

	// ErrExtractionFailed marks a URL whose content could not be extracted.
	ErrExtractionFailed = errors.New("content extraction failed")

	// ErrContentTooLarge marks content over the summarizer input limit.
	ErrContentTooLarge = errors.New("content too large")

	// ErrRateLimited marks a summarizer backend refusing with HTTP 429.
	ErrRateLimited = errors.New("summarizer rate limited")

	// ErrUpstreamError marks any other summarizer backend failure.
	ErrUpstreamError = errors.New("summarizer upstream error")

	// ErrTimeout marks a summarizer call that exceeded its deadline.
	ErrTimeout = errors.New("summarizer timed out")

	// ErrNotFound marks a fingerprint with no stored artifact.
	ErrNotFound = errors.New("summary not found")

	// ErrCorruptArtifact marks a stored artifact that no longer decodes.
	ErrCorruptArtifact = errors.New("corrupt stored artifact")

	// ErrIndexUnavailable marks a recency listing that could not be served.
	ErrIndexUnavailable = errors.New("recency index unavailable")
)
