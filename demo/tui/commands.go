package tui

import (
	"summarize/demo/client"
	"summarize/demo/feeds"

	tea "github.com/charmbracelet/bubbletea"
)

// loadFeed fetches the configured feed in the background
func loadFeed(feedURL string, maxItems int) tea.Cmd {
	return func() tea.Msg {
		items, err := feeds.Fetch(feedURL, maxItems)
		return FeedLoadedMsg{Items: items, Err: err}
	}
}

// summarizeURL submits a URL to the service
func summarizeURL(c *client.Client, target string) tea.Cmd {
	return func() tea.Msg {
		summary, err := c.SummarizeURL(target)
		return SummaryMsg{Summary: summary, Err: err}
	}
}

// fetchSummary loads an existing summary by fingerprint
func fetchSummary(c *client.Client, fingerprint string) tea.Cmd {
	return func() tea.Msg {
		summary, err := c.GetSummary(fingerprint)
		return SummaryMsg{Summary: summary, Err: err}
	}
}

// loadRecent lists recently generated summaries
func loadRecent(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		entries, err := c.Recent(recentLimit)
		return RecentLoadedMsg{Entries: entries, Err: err}
	}
}
