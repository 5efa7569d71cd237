package tui

import (
	"testing"
	"time"

	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/tui/components"
)

func TestTabAtX_HitboxesMatchRenderedTabs(t *testing.T) {
	a := App{activeTab: 0}

	// Walk the same layout RenderTabBar produces and probe the first and
	// last column of every tab.
	pos := 1
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if got := a.tabAtX(pos); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d (%s)", pos, got, i, tab.Name)
		}
		if got := a.tabAtX(pos + w - 1); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d (%s end)", pos+w-1, got, i, tab.Name)
		}
		pos += w
		if i < len(components.Tabs)-1 {
			// Separator columns hit nothing.
			if got := a.tabAtX(pos); got != -1 {
				t.Errorf("tabAtX(%d) in separator = %d, want -1", pos, got)
			}
			pos += 2
		}
	}

	if got := a.tabAtX(pos + 50); got != -1 {
		t.Errorf("tabAtX far right = %d, want -1", got)
	}
}

func TestTrendDateLabels_MonthBoundaries(t *testing.T) {
	trend := []model.TrendPoint{
		{Date: time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)},
	}
	labels := trendDateLabels(trend)
	want := []string{"Jan", "31", "Feb", "2"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestMonthsUntil_ClampsPastDates(t *testing.T) {
	if got := monthsUntil(time.Now().AddDate(-1, 0, 0)); got != 0 {
		t.Errorf("monthsUntil(past) = %d, want 0", got)
	}
	if got := monthsUntil(time.Time{}); got != 0 {
		t.Errorf("monthsUntil(zero) = %d, want 0", got)
	}
}
