package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/tui/theme"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a compact min-to-max scaled value series. Portfolio
// trends move within a narrow band, so scaling from zero would flatten
// them into a straight line.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		i := int((v - lo) / span * float64(len(sparkRunes)-1))
		if i < 0 {
			i = 0
		}
		if i > len(sparkRunes)-1 {
			i = len(sparkRunes) - 1
		}
		buf.WriteRune(sparkRunes[i])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// barChartTicks is the target Y-axis tick count.
const barChartTicks = 4

// BarChart renders a rupiah value series as vertical bars with a scaled
// Y axis and optional X labels. Falls back to a sparkline when the box is
// too small for axes.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active
	top := niceCeiling(maxOf(values))

	yLabelW := len(amountLabel(top))
	if yLabelW < 4 {
		yLabelW = 4
	}
	plotW := width - yLabelW - 1
	if plotW < 5 {
		plotW = 5
	}

	values, labels = fitSeries(values, labels, plotW)
	n := len(values)

	barW := plotW / n
	if n > 1 {
		barW = (plotW - (n - 1)) / n
	}
	if barW < 2 {
		barW = 2
	}
	if barW > 6 {
		barW = 6
	}
	gap := 0
	if n > 1 {
		gap = 1
	}
	axisLen := n*barW + (n-1)*gap

	// Bar heights in eighths of a row, computed once up front.
	eighths := make([]int, n)
	for i, v := range values {
		e := int(math.Round(v / top * float64(height*8)))
		if e > height*8 {
			e = height * 8
		}
		if e < 0 {
			e = 0
		}
		eighths[i] = e
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	// Tick rows, top to bottom.
	ticks := make(map[int]string, barChartTicks)
	for i := 1; i <= barChartTicks; i++ {
		row := height - i*height/barChartTicks
		ticks[row] = amountLabel(top * float64(i) / barChartTicks)
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, ticks[row])))
		b.WriteString(axisStyle.Render("│"))

		rowFloor := (height - 1 - row) * 8
		barStyle := lipgloss.NewStyle().Foreground(rowShade(row, height, color)).Background(t.Surface)

		for i, e := range eighths {
			if i > 0 && gap > 0 {
				b.WriteString(fillStyle.Render(" "))
			}
			cell := e - rowFloor
			switch {
			case cell >= 8:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case cell > 0:
				b.WriteString(barStyle.Render(strings.Repeat(string(sparkRunes[cell-1]), barW)))
			default:
				b.WriteString(fillStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(xAxisRow(labels, barW, gap, axisLen)))
	}

	return b.String()
}

// rowShade brightens bars toward the top of the plot.
func rowShade(row, height int, base lipgloss.Color) lipgloss.Color {
	t := theme.Active
	switch {
	case row < height/5:
		return t.AccentBright
	case row < height/2:
		return base
	default:
		return t.Accent
	}
}

// fitSeries resamples a series that would render bars narrower than 2 cells.
func fitSeries(values []float64, labels []string, plotW int) ([]float64, []string) {
	n := len(values)
	if n <= 1 || (plotW-(n-1))/n >= 2 {
		return values, labels
	}

	m := (plotW + 1) / 3
	if m < 2 {
		m = 2
	}
	out := make([]float64, m)
	var outLabels []string
	if len(labels) == n {
		outLabels = make([]string, m)
	}
	for i := range out {
		src := i * (n - 1) / (m - 1)
		out[i] = values[src]
		if outLabels != nil {
			outLabels[i] = labels[src]
		}
	}
	return out, outLabels
}

// xAxisRow lays label text under the bars, skipping labels that would
// collide and right-anchoring the final one.
func xAxisRow(labels []string, barW, gap, axisLen int) string {
	row := make([]byte, axisLen)
	for i := range row {
		row[i] = ' '
	}

	n := len(labels)
	step := 1
	if axisLen > 0 {
		step = max(1, n*8/axisLen)
	}

	lastEnd := -2
	place := func(i int, anchorRight bool) {
		lbl := labels[i]
		pos := i * (barW + gap)
		if anchorRight && pos+len(lbl) > axisLen {
			pos = axisLen - len(lbl)
		}
		if pos < 0 || pos <= lastEnd {
			return
		}
		end := pos + len(lbl)
		if end > axisLen {
			lbl = lbl[:axisLen-pos]
			end = axisLen
		}
		copy(row[pos:end], lbl)
		lastEnd = end
	}

	for i := 0; i < n-1; i += step {
		place(i, false)
	}
	if n > 1 {
		place(n-1, true)
	}

	return strings.TrimRight(string(row), " ")
}

// niceCeiling rounds up to a 1/2/5 multiple of a power of ten so axis
// labels land on round rupiah amounts.
func niceCeiling(v float64) float64 {
	if v <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, mult := range []float64{1, 2, 5, 10} {
		if v <= mult*mag {
			return mult * mag
		}
	}
	return 10 * mag
}

// amountLabel abbreviates a rupiah amount for axis ticks.
func amountLabel(v float64) string {
	for _, u := range []struct {
		div    float64
		suffix string
	}{
		{1e12, "T"},
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "k"},
	} {
		if v >= u.div {
			q := v / u.div
			if q == math.Trunc(q) {
				return fmt.Sprintf("%.0f%s", q, u.suffix)
			}
			return fmt.Sprintf("%.1f%s", q, u.suffix)
		}
	}
	if v >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = math.Max(m, v)
	}
	return m
}
