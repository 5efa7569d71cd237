package projection

import (
	"github.com/shopspring/decimal"
)

// sampleEveryMonths is the charting interval for simulated trajectories.
const sampleEveryMonths = 6

// SimResult holds the outcome of a compounding investment simulation.
type SimResult struct {
	FinalValue         decimal.Decimal
	TotalContributions decimal.Decimal
	TotalReturns       decimal.Decimal
	ReturnPercentage   float64 // 0 when nothing was contributed
	Points             []Point // sampled every 6 months, final month always present
}

// Simulate runs the standalone investment simulator: a fixed monthly
// contribution compounded at the given annual return over a duration in
// years. The recurrence is value[m] = (value[m-1] + contribution) * (1 + r)
// with r the monthly rate, i.e. each contribution earns growth in the month
// it is made.
func Simulate(monthlyContribution decimal.Decimal, annualReturnPct float64, years int) SimResult {
	monthlyContribution = clampMoney(monthlyContribution)
	if years < 0 {
		years = 0
	}
	if annualReturnPct < 0 {
		annualReturnPct = 0
	}

	months := years * 12
	rate := decimal.NewFromFloat(annualReturnPct).Div(decimal.NewFromInt(1200))
	growth := decimal.NewFromInt(1).Add(rate)

	value := decimal.Zero
	points := []Point{{Month: 0, Value: decimal.Zero}}

	for m := 1; m <= months; m++ {
		value = value.Add(monthlyContribution).Mul(growth)
		if m%sampleEveryMonths == 0 || m == months {
			points = append(points, Point{Month: m, Value: value})
		}
	}

	contributions := monthlyContribution.Mul(decimal.NewFromInt(int64(months)))
	returns := value.Sub(contributions)

	pct := 0.0
	if contributions.Sign() > 0 {
		pct = returns.Div(contributions).InexactFloat64() * 100
	}

	return SimResult{
		FinalValue:         value,
		TotalContributions: contributions,
		TotalReturns:       returns,
		ReturnPercentage:   pct,
		Points:             points,
	}
}
