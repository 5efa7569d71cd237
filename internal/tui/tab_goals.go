package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/projection"
	"github.com/theirongolddev/wealth/internal/tui/components"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

func (a App) renderGoalsTab(cw, contentH int) string {
	t := theme.Active

	if a.loadingGoals {
		return " " + a.spinner.View() + " Loading goals..."
	}
	if len(a.goals) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		return muted.Render("\n  No goals yet.\n\n  Press n to create one.")
	}

	if a.isCompactLayout() {
		return a.renderGoalList(cw, contentH)
	}

	// Split view: list on the left, projection detail on the right
	listW := cw * 2 / 5
	detailW := cw - listW
	list := a.renderGoalList(listW, contentH)
	detail := a.renderGoalDetail(detailW)

	list = padHeight(truncateHeight(list, contentH), contentH)
	detail = padHeight(truncateHeight(detail, contentH), contentH)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

func (a App) renderGoalList(w, contentH int) string {
	t := theme.Active

	selStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(dimStyle.Render(" GOALS"))
	b.WriteString("\n")

	maxRows := contentH - 2
	if maxRows < 1 {
		maxRows = 1
	}
	offset := 0
	if a.goalCursor >= maxRows {
		offset = a.goalCursor - maxRows + 1
	}

	for i := offset; i < len(a.goals) && i-offset < maxRows; i++ {
		g := a.goals[i]
		label := fmt.Sprintf(" %-6s %s", g.Type[:min(6, len(g.Type))], truncStr(g.Name, w-24))
		amount := cli.FormatRupiahShort(g.TargetAmount)
		line := fmt.Sprintf("%-*s %10s ", w-13, label, amount)
		if i == a.goalCursor {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(" [n]ew goal  [m] contribution"))
	b.WriteString("\n")

	return b.String()
}

func (a App) renderGoalDetail(w int) string {
	t := theme.Active

	if a.goalCursor >= len(a.goals) {
		return ""
	}
	g := a.goals[a.goalCursor]
	proj := a.projectionFor(g)
	tr := a.trackingFor(g.ID)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	var statusStyle lipgloss.Style
	switch proj.Status {
	case projection.StatusOnTrack:
		statusStyle = lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	case projection.StatusOffTrack:
		statusStyle = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	default:
		statusStyle = lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	}

	line := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(line("Category", string(g.Category)))
	b.WriteString(line("Target", cli.FormatRupiah(g.TargetAmount)))
	b.WriteString(line("Deadline", cli.FormatDate(g.TargetDate)))
	b.WriteString(line("Time left", cli.FormatMonths(proj.MonthsRemaining)))
	if tr != nil {
		b.WriteString(line("Saved so far", cli.FormatRupiah(tr.ActualValueToDate)))
		b.WriteString(line("Expected now", cli.FormatRupiah(tr.ExpectedValueToDate)))
	}
	b.WriteString(line("Required/month", cli.FormatRupiah(proj.RequiredMonthly)))
	if g.MonthlyContribution.Sign() > 0 {
		b.WriteString(line("Contributing", cli.FormatRupiah(g.MonthlyContribution)+"/mo"))
		b.WriteString(line("Projected final", cli.FormatRupiah(proj.ProjectedFinal)))
		if proj.Shortfall.Sign() > 0 {
			b.WriteString(line("Monthly gap", cli.FormatRupiah(proj.Shortfall)))
		}
		if proj.Surplus.Sign() > 0 {
			b.WriteString(line("Surplus", cli.FormatRupiah(proj.Surplus)))
		}
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", "Status")))
	b.WriteString(statusStyle.Render(string(proj.Status)))
	b.WriteString("\n")
	if tr != nil && tr.StatusMessage != "" {
		b.WriteString(labelStyle.Render(tr.StatusMessage))
		b.WriteString("\n")
	}

	// Trajectory sparkline at the goal's own contribution rate
	if g.MonthlyContribution.Sign() > 0 && proj.MonthsRemaining > 0 {
		points := projection.Trajectory(trCurrent(tr), g.MonthlyContribution, proj.MonthsRemaining, 1)
		vals := make([]float64, len(points))
		for i, p := range points {
			vals[i] = p.Value.InexactFloat64()
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Trajectory"))
		b.WriteString("\n")
		b.WriteString(components.Sparkline(vals, t.Blue))
		b.WriteString("\n")
	}

	return components.ContentCard(g.Name, b.String(), w)
}

func trCurrent(tr *model.GoalTracking) decimal.Decimal {
	if tr == nil {
		return decimal.Zero
	}
	return tr.ActualValueToDate
}
