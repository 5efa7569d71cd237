package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/config"
	"github.com/theirongolddev/wealth/internal/tui/components"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

const (
	settingTheme = iota
	settingTrendDays
	settingOffline
	settingsFieldCount
)

var trendDayOptions = []int{7, 30, 90}

type settingsState struct {
	cursor int
}

func (s *settingsState) next() {
	if s.cursor < settingsFieldCount-1 {
		s.cursor++
	}
}

func (s *settingsState) prev() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// settingsApply cycles the selected setting to its next value and persists
// the config. Best-effort save; the new value applies either way.
func (a App) settingsApply() (tea.Model, tea.Cmd) {
	switch a.settings.cursor {
	case settingTheme:
		idx := 0
		for i, t := range theme.All {
			if t.Name == theme.Active.Name {
				idx = i
				break
			}
		}
		next := theme.All[(idx+1)%len(theme.All)]
		theme.SetActive(next.Name)
		a.cfg.Appearance.Theme = next.Name

	case settingTrendDays:
		idx := 0
		for i, d := range trendDayOptions {
			if d == a.trendDays() {
				idx = i
				break
			}
		}
		a.cfg.General.TrendDays = trendDayOptions[(idx+1)%len(trendDayOptions)]

	case settingOffline:
		a.cfg.General.Offline = !a.cfg.General.Offline
		a.offline = a.cfg.General.Offline
	}

	_ = config.Save(a.cfg)

	if a.settings.cursor == settingTrendDays && !a.offline {
		a.loadingDash = true
		return a, tea.Batch(a.spinner.Tick,
			fetchDashboardCmd(a.client, a.profile.CustomerID, a.trendDays()))
	}
	return a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	offline := "off"
	if a.cfg.General.Offline {
		offline = "on"
	}

	rows := []struct{ label, value string }{
		{"Theme", theme.Active.Name},
		{"Trend window", fmt.Sprintf("%d days", a.trendDays())},
		{"Offline mode", offline},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		style := labelStyle
		if i == a.settings.cursor {
			marker = "> "
			style = selStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-16s", marker, row.label)))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" j/k select · Enter cycle value"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(" Account"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s <%s>", a.profile.Name, a.profile.Email)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Config: %s", config.ConfigPath())))
	b.WriteString("\n")

	return components.ContentCard("Settings", b.String(), cw)
}
