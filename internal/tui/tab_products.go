package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/tui/components"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

func (a App) renderProductsTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.profile.RiskProfile == "" {
		return muted.Render("\n  Complete the risk questionnaire to see recommended products.")
	}
	if a.loadingProds {
		return " " + a.spinner.View() + " Loading products..."
	}
	if len(a.products) == 0 {
		return muted.Render(fmt.Sprintf("\n  No products available for the %s tier.", a.profile.RiskProfile))
	}

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 44
	if nameW < 16 {
		nameW = 16
	}

	selStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(" %-*s %-14s %12s  %s", nameW, "Product", "Type", "NAV", "Cut-off")))
	b.WriteString("\n")
	for i, p := range a.products {
		line := fmt.Sprintf(" %-*s %-14s %12s  %s",
			nameW, truncStr(p.Name, nameW), truncStr(p.Type, 14),
			cli.FormatRupiah(p.NAVPrice), p.CutOffTime)
		if i == a.prodCursor {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(nameStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(" Matched to your %s profile. [j/k] select, [b]uy.", a.profile.RiskProfile)))

	return components.ContentCard("Recommended Products", b.String(), cw)
}
