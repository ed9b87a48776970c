package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	"summarize/types"
)

// New derives the cache fingerprint for resolved content: a full SHA-256 over
// a canonical form, hex encoded. Equal content always yields the same
// fingerprint regardless of insignificant whitespace, and the canonical form
// is prefixed with the resolution mode so a URL submission and a pasted body
// can never share a key.
func New(rc types.ResolvedContent) string {
	var canonical string
	switch rc.Mode {
	case types.ModeURL:
		canonical = "url|" + canonicalURL(rc.URL)
	default:
		canonical = "content|" + canonicalText(rc.Title) + "|" + canonicalText(rc.Body)
	}

	h := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(h[:])
}

// canonicalURL makes equivalent URLs compare equal: scheme and host are
// case-insensitive, the fragment is client-side only, and a trailing slash
// is noise. The query string stays; it can select entirely different content.
func canonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		// fallback: lowercase and trim
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	out := u.String()
	if strings.HasSuffix(out, "/") {
		out = strings.TrimRight(out, "/")
	}
	return out
}

// canonicalText collapses whitespace runs and trims. Case is preserved; it is
// part of the content, unlike formatting.
func canonicalText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
