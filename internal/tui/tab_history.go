package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/tui/components"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.loadingHist {
		return " " + a.spinner.View() + " Loading history..."
	}
	if len(a.history) == 0 {
		return muted.Render("\n  No transactions yet.")
	}

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 58
	if nameW < 14 {
		nameW = 14
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(" %-12s %-4s %-*s %14s %12s  %s",
		"Date", "Side", nameW, "Product", "Amount", "Units", "Status")))
	b.WriteString("\n")

	maxRows := contentH - 4
	if maxRows < 1 {
		maxRows = 1
	}
	for i, tx := range a.history {
		if i >= maxRows {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" ... %d more (use `wealth history`)", len(a.history)-maxRows)))
			b.WriteString("\n")
			break
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf(" %-12s", cli.FormatDate(tx.Date))))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %-4s", tx.Type)))
		b.WriteString(nameStyle.Render(fmt.Sprintf(" %-*s", nameW, truncStr(tx.ProductName, nameW))))
		b.WriteString(nameStyle.Render(fmt.Sprintf(" %14s", cli.FormatRupiah(tx.Amount))))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %12s", cli.FormatUnits(tx.Units))))
		b.WriteString("  ")
		b.WriteString(statusStyleFor(tx.Status).Render(string(tx.Status)))
		b.WriteString("\n")
	}

	return components.ContentCard("Transaction History", b.String(), cw)
}

func statusStyleFor(status model.TransactionStatus) lipgloss.Style {
	t := theme.Active
	switch status {
	case model.TxSettled:
		return lipgloss.NewStyle().Foreground(t.Green)
	case model.TxRejected:
		return lipgloss.NewStyle().Foreground(t.Red)
	default:
		return lipgloss.NewStyle().Foreground(t.Orange)
	}
}
