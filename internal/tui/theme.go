package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable for long study sessions
var (
	colorPrimary = lipgloss.Color("#6366F1") // Indigo
	colorAccent  = lipgloss.Color("#0EA5E9") // Sky
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorWarn    = lipgloss.Color("#EAB308") // Amber
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorTextDim = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colorText)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	correctStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// statusStyle maps a mastery status string to its display style.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "mastered":
		return lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	case "approaching":
		return lipgloss.NewStyle().Foreground(colorWarn)
	default:
		return lipgloss.NewStyle().Foreground(colorTextDim)
	}
}

// statusIcon maps a mastery status string to a one-character marker.
func statusIcon(status string) string {
	switch status {
	case "mastered":
		return "●"
	case "approaching":
		return "◑"
	default:
		return "○"
	}
}
