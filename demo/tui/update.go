package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case FeedLoadedMsg:
		return m.handleFeedLoaded(msg)
	case SummaryMsg:
		return m.handleSummary(msg)
	case RecentLoadedMsg:
		return m.handleRecentLoaded(msg)
	}
	return m, nil
}

// handleKeyPress routes keyboard input by screen state
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case StateMenu:
		return m.handleMenuKey(msg)
	case StatePicking:
		return m.handlePickingKey(msg)
	case StateInputURL:
		return m.handleInputKey(msg)
	case StateRecent:
		return m.handleRecentKey(msg)
	case StateViewing, StateError:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "b", "enter":
			m.State = StateMenu
			m.Summary = nil
			m.Err = nil
		}
	default:
		// Loading screens only react to quit.
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "f", "F":
		m.State = StateLoadingFeed
		return m, loadFeed(m.FeedURL, m.MaxItems)
	case "u", "U":
		m.State = StateInputURL
		m.Input = ""
		return m, nil
	case "r", "R":
		m.State = StateLoadingRecent
		return m, loadRecent(m.Client)
	}
	return m, nil
}

func (m Model) handlePickingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.State = StateMenu
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Items) == 0 {
			return m, nil
		}
		m.State = StateSummarizing
		return m, summarizeURL(m.Client, m.Items[m.Cursor].URL)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.State = StateMenu
	case tea.KeyEnter:
		target := strings.TrimSpace(m.Input)
		if target == "" {
			return m, nil
		}
		m.State = StateSummarizing
		return m, summarizeURL(m.Client, target)
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleRecentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.State = StateMenu
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Recent)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Recent) == 0 {
			return m, nil
		}
		m.State = StateSummarizing
		return m, fetchSummary(m.Client, m.Recent[m.Cursor].Fingerprint)
	}
	return m, nil
}

// handleFeedLoaded processes feed fetch completion
func (m Model) handleFeedLoaded(msg FeedLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Items = msg.Items
	m.Cursor = 0
	m.State = StatePicking
	return m, nil
}

// handleSummary processes a returned summary
func (m Model) handleSummary(msg SummaryMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Summary = msg.Summary
	m.State = StateViewing
	return m, nil
}

// handleRecentLoaded processes the recent listing
func (m Model) handleRecentLoaded(msg RecentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Recent = msg.Entries
	m.Cursor = 0
	m.State = StateRecent
	return m, nil
}
