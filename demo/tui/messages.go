package tui

import (
	"summarize/demo/client"
	"summarize/demo/feeds"
)

// Messages for the tea program

// FeedLoadedMsg is sent when the article feed has been fetched
type FeedLoadedMsg struct {
	Items []feeds.Item
	Err   error
}

// SummaryMsg is sent when a summarize or lookup call returns
type SummaryMsg struct {
	Summary *client.Summary
	Err     error
}

// RecentLoadedMsg is sent when the recent listing returns
type RecentLoadedMsg struct {
	Entries []client.RecencyEntry
	Err     error
}
