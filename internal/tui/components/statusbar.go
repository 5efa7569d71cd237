package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with the logged-in user on
// the right and key hints on the left.
func RenderStatusBar(width int, user, dataAge string, offline, refreshing bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [r]efresh  [q]uit"
	if refreshing {
		left = " refreshing..."
	}

	right := ""
	if offline {
		right += "OFFLINE "
	}
	if dataAge != "" {
		right += "synced " + dataAge + " "
	}
	if user != "" {
		right += user + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
