// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatRupiah formats a monetary value as whole rupiah with separators.
// e.g., 1500000 -> "Rp 1,500,000"
func FormatRupiah(d decimal.Decimal) string {
	return "Rp " + FormatNumber(d.Round(0).IntPart())
}

// FormatRupiahShort formats a monetary value with human-readable suffixes.
// e.g., 1500000 -> "Rp 1.5M", 3600000000 -> "Rp 3.6B"
func FormatRupiahShort(d decimal.Decimal) string {
	v := d.InexactFloat64()
	abs := v
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("Rp %.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("Rp %.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("Rp %.1fK", v/1_000)
	default:
		return "Rp " + strconv.FormatInt(int64(v), 10)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatUnits formats fund units at the gateway's 6-decimal precision,
// trimming trailing zeros.
// e.g., 99.123450 -> "99.12345", 410.000000 -> "410"
func FormatUnits(d decimal.Decimal) string {
	s := d.Round(6).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate renders a calendar date, or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}

// FormatMonths renders a month count as a compact duration.
// e.g., 10 -> "10mo", 27 -> "2y 3mo"
func FormatMonths(months int) string {
	if months <= 0 {
		return "now"
	}
	years := months / 12
	rem := months % 12
	if years == 0 {
		return fmt.Sprintf("%dmo", rem)
	}
	if rem == 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dy %dmo", years, rem)
}
