package projection

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

func TestMonthsRemaining_ClampedAtZero(t *testing.T) {
	now := mustTime(t, "2025-06-15")

	cases := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"ten months out", 2026, 4, 10},
		{"current month", 2025, 6, 0},
		{"past deadline", 2024, 1, 0},
		{"next month", 2025, 7, 1},
		{"years out", 2045, 6, 240},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthsRemaining(tc.year, tc.month, now)
			if got != tc.want {
				t.Fatalf("MonthsRemaining(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
			}
		})
	}
}

func TestMonthsRemaining_NonIncreasingAsTimeAdvances(t *testing.T) {
	start := mustTime(t, "2025-01-01")

	prev := MonthsRemaining(2027, 3, start)
	for day := 1; day <= 900; day += 13 {
		now := start.AddDate(0, 0, day)
		got := MonthsRemaining(2027, 3, now)
		if got > prev {
			t.Fatalf("months remaining increased from %d to %d at %s", prev, got, now)
		}
		if got < 0 {
			t.Fatalf("months remaining went negative (%d) at %s", got, now)
		}
		prev = got
	}
}

func TestRequiredMonthly(t *testing.T) {
	cases := []struct {
		name      string
		remaining decimal.Decimal
		months    int
		want      decimal.Decimal
	}{
		{"even split", d("15000000"), 10, d("1500000")},
		{"goal already met", d("-5000000"), 10, decimal.Zero},
		{"exactly met", decimal.Zero, 10, decimal.Zero},
		{"deadline passed, gap due now", d("7500000"), 0, d("7500000")},
		{"one month left", d("2000000"), 1, d("2000000")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RequiredMonthly(tc.remaining, tc.months)
			if !got.Equal(tc.want) {
				t.Fatalf("RequiredMonthly(%s, %d) = %s, want %s", tc.remaining, tc.months, got, tc.want)
			}
		})
	}
}

func TestCompute_OnTrackScenario(t *testing.T) {
	// 45M saved toward 60M due 2025-12, contributing 2M/month, seen from
	// February 2025 (10 months out).
	p := Compute(Inputs{
		CurrentAmount:       d("45000000"),
		TargetAmount:        d("60000000"),
		MonthlyContribution: d("2000000"),
		TargetYear:          2025,
		TargetMonth:         12,
	}, mustTime(t, "2025-02-10"))

	if p.MonthsRemaining != 10 {
		t.Fatalf("MonthsRemaining = %d, want 10", p.MonthsRemaining)
	}
	if !p.RequiredMonthly.Equal(d("1500000")) {
		t.Fatalf("RequiredMonthly = %s, want 1500000", p.RequiredMonthly)
	}
	if !p.OnTrack {
		t.Fatal("expected goal to be on track")
	}
	if !p.ProjectedFinal.Equal(d("65000000")) {
		t.Fatalf("ProjectedFinal = %s, want 65000000", p.ProjectedFinal)
	}
	if p.Status != StatusOnTrack {
		t.Fatalf("Status = %q, want %q", p.Status, StatusOnTrack)
	}
	if !p.Shortfall.Equal(decimal.Zero) {
		t.Fatalf("Shortfall = %s, want 0", p.Shortfall)
	}
	if !p.Surplus.Equal(d("5000000")) {
		t.Fatalf("Surplus = %s, want 5000000", p.Surplus)
	}
}

func TestCompute_LongHorizonScenario(t *testing.T) {
	// 95M toward 200M, 60 months out, contributing 2.5M/month.
	// Required ~1.75M; trajectory 95M + 150M = 245M clears the target.
	p := Compute(Inputs{
		CurrentAmount:       d("95000000"),
		TargetAmount:        d("200000000"),
		MonthlyContribution: d("2500000"),
		TargetYear:          2030,
		TargetMonth:         6,
	}, mustTime(t, "2025-06-01"))

	if p.MonthsRemaining != 60 {
		t.Fatalf("MonthsRemaining = %d, want 60", p.MonthsRemaining)
	}
	if !p.RequiredMonthly.Equal(d("1750000")) {
		t.Fatalf("RequiredMonthly = %s, want 1750000", p.RequiredMonthly)
	}
	if !p.OnTrack || !p.WillMeetTarget {
		t.Fatalf("OnTrack = %v, WillMeetTarget = %v, want both true", p.OnTrack, p.WillMeetTarget)
	}
	if !p.ProjectedFinal.Equal(d("245000000")) {
		t.Fatalf("ProjectedFinal = %s, want 245000000", p.ProjectedFinal)
	}
}

func TestCompute_OverfundedGoalIsComplete(t *testing.T) {
	p := Compute(Inputs{
		CurrentAmount:       d("75000000"),
		TargetAmount:        d("60000000"),
		MonthlyContribution: decimal.Zero,
		TargetYear:          2026,
		TargetMonth:         1,
	}, mustTime(t, "2025-06-01"))

	if !p.RequiredMonthly.Equal(decimal.Zero) {
		t.Fatalf("RequiredMonthly = %s, want 0 for over-funded goal", p.RequiredMonthly)
	}
	if !p.WillMeetTarget {
		t.Fatal("over-funded goal must report WillMeetTarget regardless of contribution")
	}
	if p.Status != StatusOnTrack {
		t.Fatalf("Status = %q, want %q", p.Status, StatusOnTrack)
	}
}

func TestCompute_PastDeadlineWithGap(t *testing.T) {
	p := Compute(Inputs{
		CurrentAmount:       d("10000000"),
		TargetAmount:        d("25000000"),
		MonthlyContribution: d("1000000"),
		TargetYear:          2024,
		TargetMonth:         3,
	}, mustTime(t, "2025-06-01"))

	if p.MonthsRemaining != 0 {
		t.Fatalf("MonthsRemaining = %d, want 0", p.MonthsRemaining)
	}
	// The whole gap is due now rather than a division by zero.
	if !p.RequiredMonthly.Equal(d("15000000")) {
		t.Fatalf("RequiredMonthly = %s, want 15000000", p.RequiredMonthly)
	}
	if p.Status != StatusOffTrack {
		t.Fatalf("Status = %q, want %q", p.Status, StatusOffTrack)
	}
}

func TestCompute_ClampsNegativeInputs(t *testing.T) {
	p := Compute(Inputs{
		CurrentAmount:       d("-500"),
		TargetAmount:        d("1000000"),
		MonthlyContribution: d("-200"),
		TargetYear:          2026,
		TargetMonth:         6,
	}, mustTime(t, "2025-06-01"))

	if p.ProjectedFinal.Sign() < 0 {
		t.Fatalf("ProjectedFinal = %s, negative money leaked through", p.ProjectedFinal)
	}
	if p.RequiredMonthly.Sign() < 0 || p.Shortfall.Sign() < 0 {
		t.Fatal("derived rates must never be negative")
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := Inputs{
		CurrentAmount:       d("12345678"),
		TargetAmount:        d("98765432"),
		MonthlyContribution: d("1111111"),
		TargetYear:          2028,
		TargetMonth:         9,
	}
	now := mustTime(t, "2025-03-20")

	a := Compute(in, now)
	b := Compute(in, now)

	if a.MonthsRemaining != b.MonthsRemaining ||
		!a.RequiredMonthly.Equal(b.RequiredMonthly) ||
		!a.ProjectedFinal.Equal(b.ProjectedFinal) ||
		a.OnTrack != b.OnTrack ||
		a.WillMeetTarget != b.WillMeetTarget ||
		a.Status != b.Status {
		t.Fatalf("identical inputs produced different projections:\n%+v\n%+v", a, b)
	}
}

func TestTrajectory_PointCountAndValues(t *testing.T) {
	points := Trajectory(d("1000000"), d("500000"), 24, 6)

	if len(points) != 5 {
		t.Fatalf("got %d points, want 5 (months 0, 6, 12, 18, 24)", len(points))
	}
	for i, wantMonth := range []int{0, 6, 12, 18, 24} {
		if points[i].Month != wantMonth {
			t.Fatalf("points[%d].Month = %d, want %d", i, points[i].Month, wantMonth)
		}
	}
	if !points[4].Value.Equal(d("13000000")) {
		t.Fatalf("final value = %s, want 13000000", points[4].Value)
	}
}

func TestTrajectory_FinalMonthAlwaysIncluded(t *testing.T) {
	points := Trajectory(decimal.Zero, d("100"), 10, 6)

	last := points[len(points)-1]
	if last.Month != 10 {
		t.Fatalf("last point at month %d, want 10", last.Month)
	}
	if !last.Value.Equal(d("1000")) {
		t.Fatalf("last value = %s, want 1000", last.Value)
	}
}

func TestRetirementTarget(t *testing.T) {
	got := RetirementTarget(d("10000000"), 30)
	if !got.Equal(d("3600000000")) {
		t.Fatalf("RetirementTarget = %s, want 3600000000", got)
	}
}
