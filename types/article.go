package types

// ResolutionMode records how an ArticleReference was turned into content.
// The cache fingerprint depends on it, so URL submissions and direct-content
// submissions can never collide.
type ResolutionMode string

const (
	ModeURL     ResolutionMode = "url"
	ModeContent ResolutionMode = "content"
)

// ArticleReference is a caller-supplied pointer to something summarizable.
// Exactly one variant applies: content mode when Body is set (URL and Title
// become metadata), URL mode otherwise.
type ArticleReference struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
	Body  string `json:"body,omitempty"`
}

// IsDirect reports whether the reference carries its own body and needs no
// network fetch.
func (r ArticleReference) IsDirect() bool {
	return r.Body != ""
}

// ResolvedContent is the concrete text a reference resolved to. Title and
// Body are stored verbatim; canonicalization happens only inside fingerprint
// derivation.
type ResolvedContent struct {
	Title string
	Body  string
	URL   string
	Mode  ResolutionMode
}
