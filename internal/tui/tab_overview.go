package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/tui/components"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Metric cards
	portfolioVal := "-"
	holdings := "-"
	if a.summary != nil {
		portfolioVal = cli.FormatRupiahShort(a.summary.TotalValue)
		holdings = cli.FormatNumber(int64(len(a.summary.Breakdown)))
	}

	onTrack := 0
	for _, tr := range a.tracking {
		if tr.Status == model.TrackingOnTrack {
			onTrack++
		}
	}
	goalsDelta := ""
	if len(a.tracking) > 0 {
		goalsDelta = fmt.Sprintf("%d on track", onTrack)
	}

	risk := "-"
	if a.profile.RiskProfile != "" {
		risk = string(a.profile.RiskProfile)
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Portfolio", portfolioVal, fmt.Sprintf("last %dd", a.trendDays())},
		{"Goals", cli.FormatNumber(int64(len(a.goals))), goalsDelta},
		{"Holdings", holdings, ""},
		{"Risk Profile", risk, ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Portfolio value trend
	if len(a.trend) > 0 {
		chartVals := make([]float64, len(a.trend))
		for i, p := range a.trend {
			chartVals[i] = p.Value.InexactFloat64()
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Portfolio Value (%dd)", a.trendDays()),
			components.BarChart(chartVals, trendDateLabels(a.trend), t.Blue, chartInnerW, 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Goal progress bars + recent activity
	halves := components.LayoutRow(cw, 2)

	var goalBody strings.Builder
	if len(a.tracking) == 0 {
		goalBody.WriteString("No goals yet. Create one with `wealth goals create`.")
	} else {
		innerW := components.CardInnerWidth(halves[0])
		labelW := innerW / 3
		if labelW < 10 {
			labelW = 10
		}
		barW := innerW - labelW - 14
		if barW < 8 {
			barW = 8
		}
		limit := 5
		if len(a.tracking) < limit {
			limit = len(a.tracking)
		}
		for _, tr := range a.tracking[:limit] {
			months := monthsUntil(tr.TargetDate)
			goalBody.WriteString(components.GoalBar(
				truncStr(tr.GoalName, labelW), tr.ProgressPct(), cli.FormatMonths(months), labelW, barW))
			goalBody.WriteString("\n")
		}
	}

	var actBody strings.Builder
	if len(a.history) == 0 {
		actBody.WriteString("No transactions in view. Press h for history.")
	} else {
		limit := 5
		if len(a.history) < limit {
			limit = len(a.history)
		}
		innerW := components.CardInnerWidth(halves[1])
		for _, tx := range a.history[:limit] {
			line := fmt.Sprintf("%s  %-4s %s  %s",
				cli.FormatDate(tx.Date), tx.Type,
				truncStr(tx.ProductName, innerW-32), cli.FormatRupiahShort(tx.Amount))
			actBody.WriteString(truncStr(line, innerW))
			actBody.WriteString("\n")
		}
	}

	goalCard := components.ContentCard("Goal Progress", goalBody.String(), halves[0])
	actCard := components.ContentCard("Recent Activity", actBody.String(), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Goal Progress", goalBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Recent Activity", actBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{goalCard, actCard}))
	}

	return b.String()
}

// trendDateLabels builds compact X-axis labels for a chronological series.
// First label and month boundaries show the month abbreviation, everything
// else just the day number.
func trendDateLabels(trend []model.TrendPoint) []string {
	labels := make([]string, len(trend))
	prevMonth := time.Month(0)
	for i, p := range trend {
		switch {
		case i == 0, p.Date.Month() != prevMonth:
			labels[i] = p.Date.Format("Jan")
		default:
			labels[i] = strconv.Itoa(p.Date.Day())
		}
		prevMonth = p.Date.Month()
	}
	return labels
}

// monthsUntil counts whole months from now to the first day of t's month,
// clamped at zero.
func monthsUntil(target time.Time) int {
	if target.IsZero() {
		return 0
	}
	now := time.Now()
	months := (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
	if months < 0 {
		return 0
	}
	return months
}
