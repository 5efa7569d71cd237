package components

import "testing"

func TestLayoutRow_SumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 4},
		{121, 4},
		{123, 4},
		{80, 3},
		{7, 2},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		// Earlier columns absorb the remainder, so widths never increase.
		for i := 1; i < len(widths); i++ {
			if widths[i] > widths[i-1] {
				t.Errorf("LayoutRow(%d, %d) widths not non-increasing: %v", tc.total, tc.n, widths)
			}
		}
	}
}

func TestLayoutRow_ZeroColumns(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestTabVisualWidth_MatchesRenderRules(t *testing.T) {
	for _, tab := range Tabs {
		active := TabVisualWidth(tab, true)
		if active != len(tab.Name) {
			t.Errorf("active width for %s = %d, want %d", tab.Name, active, len(tab.Name))
		}

		inactive := TabVisualWidth(tab, false)
		want := len(tab.Name) + 2
		if tab.KeyPos < 0 {
			want = len(tab.Name) + 3
		}
		if inactive != want {
			t.Errorf("inactive width for %s = %d, want %d", tab.Name, inactive, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('g'); idx < 0 || Tabs[idx].Name != "Goals" {
		t.Errorf("TabIdxByKey('g') = %d", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}
