// Package theme defines color themes for the wealth TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme names the color roles the dashboard draws with. Money movements
// use Green/Red, goal health adds Orange and Yellow in between.
type Theme struct {
	Name         string
	Background   lipgloss.Color // app background
	Surface      lipgloss.Color // card and panel fill
	SurfaceHover lipgloss.Color // active tab, selected row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // focused panel border
	TextDim      lipgloss.Color // hints, disabled
	TextMuted    lipgloss.Color // labels, metadata
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Green        lipgloss.Color
	GreenBright  lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
	Blue         lipgloss.Color
	Yellow       lipgloss.Color
	Cyan         lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default, a warm paper-inspired dark palette.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	GreenBright:  lipgloss.Color("#A3B859"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
	Cyan:         lipgloss.Color("#24837B"),
}

// Nord is a cool arctic palette with a frost-blue accent.
var Nord = Theme{
	Name:         "nord",
	Background:   lipgloss.Color("#2E3440"),
	Surface:      lipgloss.Color("#3B4252"),
	SurfaceHover: lipgloss.Color("#434C5E"),
	Border:       lipgloss.Color("#4C566A"),
	BorderAccent: lipgloss.Color("#88C0D0"),
	TextDim:      lipgloss.Color("#616E88"),
	TextMuted:    lipgloss.Color("#D8DEE9"),
	TextPrimary:  lipgloss.Color("#ECEFF4"),
	Accent:       lipgloss.Color("#88C0D0"),
	AccentBright: lipgloss.Color("#8FBCBB"),
	Green:        lipgloss.Color("#A3BE8C"),
	GreenBright:  lipgloss.Color("#B5D19A"),
	Orange:       lipgloss.Color("#D08770"),
	Red:          lipgloss.Color("#BF616A"),
	Blue:         lipgloss.Color("#81A1C1"),
	Yellow:       lipgloss.Color("#EBCB8B"),
	Cyan:         lipgloss.Color("#8FBCBB"),
}

// Terminal sticks to the ANSI 16 palette for maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	GreenBright:  lipgloss.Color("10"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Blue:         lipgloss.Color("4"),
	Yellow:       lipgloss.Color("3"),
	Cyan:         lipgloss.Color("6"),
}

// All available themes, in the order the settings screen lists them.
var All = []Theme{FlexokiDark, Nord, Terminal}

// ByName returns the named theme, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
