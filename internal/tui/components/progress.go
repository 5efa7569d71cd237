package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/tui/theme"
)

// ColorForProgress returns red/orange/yellow/green based on goal funding level.
// Unlike utilization meters, high progress toward a goal is good.
func ColorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Green)
	case pct >= 0.6:
		return string(t.Yellow)
	case pct >= 0.3:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// GoalBar renders a labeled goal progress bar with percentage and time left.
func GoalBar(label string, pct float64, timeLeft string, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForProgress(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForProgress(pct))).Background(t.Surface).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(pctStr) +
		spaceStyle.Render("  ") +
		timeStyle.Render(timeLeft)
}
