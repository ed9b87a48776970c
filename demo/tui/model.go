package tui

import (
	"summarize/demo/client"
	"summarize/demo/feeds"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the demo's screen state machine
type State string

const (
	StateMenu          State = "menu"
	StateLoadingFeed   State = "loading_feed"
	StatePicking       State = "picking"
	StateInputURL      State = "input_url"
	StateSummarizing   State = "summarizing"
	StateLoadingRecent State = "loading_recent"
	StateRecent        State = "recent"
	StateViewing       State = "viewing"
	StateError         State = "error"
)

// recentLimit is how many entries the recent screen requests.
const recentLimit = 20

// Model represents the TUI client state (thin client over the service API)
type Model struct {
	Client   *client.Client
	FeedURL  string
	MaxItems int

	State   State
	Items   []feeds.Item
	Recent  []client.RecencyEntry
	Cursor  int
	Input   string
	Summary *client.Summary
	Err     error
}

// NewModel creates a new TUI model
func NewModel(c *client.Client, feedURL string, maxItems int) Model {
	return Model{
		Client:   c,
		FeedURL:  feedURL,
		MaxItems: maxItems,
		State:    StateMenu,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}
