package projection

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimulate_ZeroReturnIsSimpleSum(t *testing.T) {
	res := Simulate(d("1000000"), 0, 1)

	if !res.FinalValue.Equal(d("12000000")) {
		t.Fatalf("FinalValue = %s, want exactly 12000000 at 0%% return", res.FinalValue)
	}
	if !res.TotalContributions.Equal(d("12000000")) {
		t.Fatalf("TotalContributions = %s, want 12000000", res.TotalContributions)
	}
	if !res.TotalReturns.Equal(decimal.Zero) {
		t.Fatalf("TotalReturns = %s, want 0", res.TotalReturns)
	}
	if res.ReturnPercentage != 0 {
		t.Fatalf("ReturnPercentage = %f, want 0", res.ReturnPercentage)
	}
}

func TestSimulate_MatchesAnnuityDueClosedForm(t *testing.T) {
	// 1M/month, 8% annual, 10 years. The recurrence
	// value[m] = (value[m-1] + c) * (1 + r) is an annuity-due:
	// FV = c * ((1+r)^n - 1) / r * (1+r).
	res := Simulate(d("1000000"), 8, 10)

	r := 8.0 / 100 / 12
	n := 120.0
	want := 1_000_000 * (math.Pow(1+r, n) - 1) / r * (1 + r)

	got := res.FinalValue.InexactFloat64()
	if math.Abs(got-want)/want > 1e-9 {
		t.Fatalf("FinalValue = %.2f, closed form = %.2f", got, want)
	}

	if !res.TotalContributions.Equal(d("120000000")) {
		t.Fatalf("TotalContributions = %s, want 120000000", res.TotalContributions)
	}
	if !res.FinalValue.Equal(res.TotalContributions.Add(res.TotalReturns)) {
		t.Fatal("FinalValue must equal contributions + returns")
	}
	if res.ReturnPercentage <= 0 {
		t.Fatalf("ReturnPercentage = %f, want positive gain", res.ReturnPercentage)
	}
}

func TestSimulate_SamplingIncludesFinalMonth(t *testing.T) {
	res := Simulate(d("500000"), 5, 1) // 12 months: samples at 0, 6, 12

	months := make([]int, len(res.Points))
	for i, p := range res.Points {
		months[i] = p.Month
	}
	if len(months) != 3 || months[0] != 0 || months[1] != 6 || months[2] != 12 {
		t.Fatalf("sample months = %v, want [0 6 12]", months)
	}
}

func TestSimulate_ZeroDurationGuardsDivision(t *testing.T) {
	res := Simulate(d("1000000"), 8, 0)

	if !res.FinalValue.Equal(decimal.Zero) {
		t.Fatalf("FinalValue = %s, want 0", res.FinalValue)
	}
	if res.ReturnPercentage != 0 {
		t.Fatalf("ReturnPercentage = %f, want 0 when nothing contributed", res.ReturnPercentage)
	}
	if math.IsNaN(res.ReturnPercentage) || math.IsInf(res.ReturnPercentage, 0) {
		t.Fatal("ReturnPercentage must never be NaN or Inf")
	}
}

func TestSimulate_ZeroContributionGuardsDivision(t *testing.T) {
	res := Simulate(decimal.Zero, 8, 5)

	if res.ReturnPercentage != 0 {
		t.Fatalf("ReturnPercentage = %f, want 0", res.ReturnPercentage)
	}
}
