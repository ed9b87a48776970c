package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary = "#2D9CDB"
	colorSuccess = "#04B575"
	colorError   = "#EB5757"
	colorInfo    = "#767676"
	colorBright  = "#FAFAFA"
)

// Styles for the TUI application
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginTop(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorBright)).
			Background(lipgloss.Color(colorPrimary)).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorPrimary)).
			Padding(1, 2).
			Width(80)
)
