package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"1500000", "Rp 1,500,000"},
		{"1234567.89", "Rp 1,234,568"},
		{"-250000", "Rp -250,000"},
		{"3600000000", "Rp 3,600,000,000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(d(t, tc.in)); got != tc.want {
			t.Errorf("FormatRupiah(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRupiahShort(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"950", "Rp 950"},
		{"1500", "Rp 1.5K"},
		{"1500000", "Rp 1.5M"},
		{"45000000", "Rp 45.0M"},
		{"3600000000", "Rp 3.6B"},
	}
	for _, tc := range cases {
		if got := FormatRupiahShort(d(t, tc.in)); got != tc.want {
			t.Errorf("FormatRupiahShort(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"99.123450", "99.12345"},
		{"410.000000", "410"},
		{"0.000001", "0.000001"},
		{"12.3456789", "12.345679"},
	}
	for _, tc := range cases {
		if got := FormatUnits(d(t, tc.in)); got != tc.want {
			t.Errorf("FormatUnits(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	cases := []struct {
		months int
		want   string
	}{
		{0, "now"},
		{-3, "now"},
		{10, "10mo"},
		{12, "1y"},
		{27, "2y 3mo"},
	}
	for _, tc := range cases {
		if got := FormatMonths(tc.months); got != tc.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tc.months, got, tc.want)
		}
	}
}

func TestFormatDate_Zero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero) = %q, want -", got)
	}
	stamp := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(stamp); got != "01 Jun 2027" {
		t.Errorf("FormatDate = %q, want 01 Jun 2027", got)
	}
}

func TestRenderTable_ContainsCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Goal", "Target"},
		Rows: [][]string{
			{"House", "Rp 60,000,000"},
			{"Retirement", "Rp 3,600,000,000"},
		},
	})
	for _, want := range []string{"Goal", "Target", "House", "Rp 3,600,000,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q, want empty", got)
	}
	out := RenderSparkline([]float64{1, 2, 3, 4})
	if len([]rune(out)) != 4 {
		t.Errorf("sparkline length = %d, want 4", len([]rune(out)))
	}
}
