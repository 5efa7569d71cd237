// Package components provides reusable TUI widgets for the wealth dashboard.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/tui/theme"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// cardFrame is the shared bordered box every card variant renders into.
// outerWidth includes the border columns.
func cardFrame(body string, outerWidth int) string {
	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(inner).
		Padding(0, 1).
		Render(body)
}

// MetricCard renders a label over a bold value, with an optional delta line
// underneath. Deltas beginning with + or - are tinted like money movements.
func MetricCard(label, value, delta string, outerWidth int) string {
	t := theme.Active

	lines := []string{
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(label),
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(value),
	}
	if delta != "" {
		deltaColor := t.TextDim
		switch {
		case strings.HasPrefix(delta, "+"):
			deltaColor = t.Green
		case strings.HasPrefix(delta, "-"):
			deltaColor = t.Red
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(deltaColor).Render(delta))
	}

	return cardFrame(strings.Join(lines, "\n"), outerWidth)
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
func MetricCardRow(cards []struct{ Label, Value, Delta string }, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(cards))
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = MetricCard(c.Label, c.Value, c.Delta, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered card with an optional bold title line.
func ContentCard(title, body string, outerWidth int) string {
	if title != "" {
		heading := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true).Render(title)
		body = heading + "\n" + body
	}
	return cardFrame(body, outerWidth)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a card given its
// outer width (subtracts border and padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
