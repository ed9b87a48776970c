package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 Article Summarizer Demo"))
	b.WriteString("\n\n")

	switch m.State {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateLoadingFeed:
		b.WriteString(StatusStyle.Render("⏳ Fetching feed..."))
	case StatePicking:
		b.WriteString(m.viewPicker())
	case StateInputURL:
		b.WriteString(m.viewInput())
	case StateSummarizing:
		b.WriteString(StatusStyle.Render("🤖 Summarizing... cold articles can take a minute"))
	case StateLoadingRecent:
		b.WriteString(StatusStyle.Render("⏳ Loading recent summaries..."))
	case StateRecent:
		b.WriteString(m.viewRecent())
	case StateViewing:
		b.WriteString(m.viewSummary())
	case StateError:
		errMsg := "unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		b.WriteString(ErrorStyle.Render("❌ " + errMsg))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'esc' to go back | 'q' to quit"))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render("What would you like to do?"))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("  f  pick an article from the feed"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("  u  summarize a URL"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("  r  browse recent summaries"))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	return b.String()
}

func (m Model) viewPicker() string {
	if len(m.Items) == 0 {
		return InfoStyle.Render("Feed is empty. Press 'esc' to go back.")
	}
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(fmt.Sprintf("Pick an article (%d)", len(m.Items))))
	b.WriteString("\n\n")
	for i, item := range m.Items {
		if i == m.Cursor {
			b.WriteString(StatusStyle.Render("> " + item.Title))
		} else {
			b.WriteString(InfoStyle.Render("  " + item.Title))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ to move | enter to summarize | esc to go back"))
	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render("Enter an article URL"))
	b.WriteString("\n\n")
	b.WriteString("  " + m.Input + "▌")
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("enter to summarize | esc to go back"))
	return b.String()
}

func (m Model) viewRecent() string {
	if len(m.Recent) == 0 {
		return InfoStyle.Render("No summaries yet. Press 'esc' to go back.")
	}
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(fmt.Sprintf("Recent summaries (%d)", len(m.Recent))))
	b.WriteString("\n\n")
	for i, entry := range m.Recent {
		line := fmt.Sprintf("%s  %s", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Title)
		if i == m.Cursor {
			b.WriteString(StatusStyle.Render("> " + line))
		} else {
			b.WriteString(InfoStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ to move | enter to open | esc to go back"))
	return b.String()
}

func (m Model) viewSummary() string {
	s := m.Summary
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(s.Title))
	b.WriteString("\n\n")
	if s.URL != "" {
		b.WriteString(InfoStyle.Render(s.URL))
		b.WriteString("\n\n")
	}
	b.WriteString(s.Summary)
	b.WriteString("\n\n")
	cached := "freshly generated"
	if s.CacheHit {
		cached = "served from cache"
	}
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%s | %s", cached, s.CreatedAt.Format("2006-01-02 15:04"))))

	return BoxStyle.Render(b.String()) + "\n\n" + InfoStyle.Render("esc to go back | q to quit")
}
