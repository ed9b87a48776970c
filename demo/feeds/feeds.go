// Package feeds fetches article lists for the demo's feed picker.
package feeds

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultPreset is the feed used when none is given on the command line.
const DefaultPreset = "hn"

// Presets maps friendly names to RSS feed URLs.
var Presets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
}

// ResolveURL resolves a feed identifier to a URL. Preset names map to their
// URLs; anything else is assumed to be a direct feed URL.
func ResolveURL(feedInput string) string {
	if url, exists := Presets[feedInput]; exists {
		return url
	}
	return feedInput
}

// Item is one pickable article from a feed.
type Item struct {
	Title     string
	URL       string
	Published time.Time
}

// Fetch retrieves and parses an RSS/Atom feed, returning at most maxCount
// items in feed order.
func Fetch(feedURL string, maxCount int) ([]Item, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if maxCount > 0 && count > maxCount {
		count = maxCount
	}

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		entry := feed.Items[i]
		if entry.Link == "" {
			continue
		}

		var published time.Time
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = *entry.UpdatedParsed
		}

		items = append(items, Item{
			Title:     entry.Title,
			URL:       entry.Link,
			Published: published,
		})
	}

	return items, nil
}
