package types

import "time"

// SummaryArtifact is one successful summarization, keyed by fingerprint.
// Artifacts are immutable once stored; a second put for the same fingerprint
// writes identical content.
type SummaryArtifact struct {
	Fingerprint string    `json:"fingerprint"`
	Title       string    `json:"title"`
	URL         string    `json:"url,omitempty"`
	Summary     string    `json:"summary"` // Markdown
	CreatedAt   time.Time `json:"created_at"`
}

// RecencyEntry is the slim index record kept per artifact for recency
// listings, so listing never decompresses artifact bodies.
type RecencyEntry struct {
	Fingerprint string    `json:"fingerprint"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
}
