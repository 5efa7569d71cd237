package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/projection"
	"github.com/theirongolddev/wealth/internal/tui/components"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

type simValues struct {
	Monthly string
	Rate    string
	Years   string
}

type simulatorState struct {
	form   *huh.Form
	vals   *simValues // pointer so huh's bindings survive model copies
	result *projection.SimResult
	inputs simValues // the values the result was computed from
}

func newSimulatorState() simulatorState {
	return simulatorState{
		vals: &simValues{Monthly: "1000000", Rate: "6", Years: "10"},
	}
}

func newSimulatorForm(vals *simValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly contribution (Rp)").
				Validate(validatePositiveDecimal).
				Value(&vals.Monthly),
			huh.NewInput().
				Title("Expected annual return (%)").
				Validate(validateRate).
				Value(&vals.Rate),
			huh.NewInput().
				Title("Duration (years)").
				Validate(validateYears).
				Value(&vals.Years),
		).Title("Investment Simulator").
			Description("Esc to cancel"),
	)
}

func validatePositiveDecimal(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.Sign() <= 0 {
		return fmt.Errorf("enter a positive amount")
	}
	return nil
}

func validateRate(s string) error {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || r < 0 || r > 100 {
		return fmt.Errorf("enter a rate between 0 and 100")
	}
	return nil
}

func validateYears(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1 || y > 80 {
		return fmt.Errorf("enter 1-80 years")
	}
	return nil
}

func (a App) updateSimulatorForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.simState.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.simState.form = f
	}

	if a.simState.form.State == huh.StateCompleted {
		monthly, _ := decimal.NewFromString(strings.TrimSpace(a.simState.vals.Monthly))
		rate, _ := strconv.ParseFloat(strings.TrimSpace(a.simState.vals.Rate), 64)
		years, _ := strconv.Atoi(strings.TrimSpace(a.simState.vals.Years))

		result := projection.Simulate(monthly, rate, years)
		a.simState.result = &result
		a.simState.inputs = *a.simState.vals
		a.simState.form = nil
		return a, nil
	}
	if a.simState.form.State == huh.StateAborted {
		a.simState.form = nil
		return a, nil
	}
	return a, cmd
}

func (a App) renderSimulatorTab(cw int) string {
	t := theme.Active

	if a.simState.form != nil {
		return a.simState.form.View()
	}

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	if a.simState.result == nil {
		return muted.Render("\n  Press Enter to run a compounding simulation.")
	}

	res := a.simState.result
	in := a.simState.inputs

	// Summary cards
	cards := []struct{ Label, Value, Delta string }{
		{"Final Value", cli.FormatRupiahShort(res.FinalValue), fmt.Sprintf("%s yrs @ %s%%", in.Years, in.Rate)},
		{"Contributed", cli.FormatRupiahShort(res.TotalContributions), cli.FormatRupiah(mustDecimal(in.Monthly)) + "/mo"},
		{"Returns", cli.FormatRupiahShort(res.TotalReturns), fmt.Sprintf("%+.1f%%", res.ReturnPercentage)},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Growth chart from the sampled points
	if len(res.Points) > 0 {
		vals := make([]float64, len(res.Points))
		labels := make([]string, len(res.Points))
		for i, p := range res.Points {
			vals[i] = p.Value.InexactFloat64()
			if p.Month%12 == 0 {
				labels[i] = fmt.Sprintf("y%d", p.Month/12)
			} else {
				labels[i] = fmt.Sprintf("m%d", p.Month)
			}
		}
		b.WriteString(components.ContentCard(
			"Projected Growth",
			components.BarChart(vals, labels, t.Green, components.CardInnerWidth(cw), 12),
			cw,
		))
		b.WriteString("\n")
	}

	b.WriteString(muted.Render(" Press Enter to run another simulation."))
	return b.String()
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
