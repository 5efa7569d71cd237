// Package projection computes client-side goal forecasts: months remaining,
// required contribution rates, simple-sum trajectories, and compounding
// investment simulations. All functions are pure; server-side tracking
// figures are never recomputed here.
package projection

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies a goal relative to its required contribution rate and
// projected trajectory.
type Status string

const (
	// StatusOnTrack means the contribution rate meets the required rate and
	// the projected final amount reaches the target.
	StatusOnTrack Status = "On Track"
	// StatusNeedsAdjustment means the rate looks sufficient but the simple-sum
	// trajectory still falls short of the target. The two checks can disagree
	// at small numerical margins.
	StatusNeedsAdjustment Status = "Needs Adjustment"
	// StatusOffTrack means the contribution rate is below the required rate.
	StatusOffTrack Status = "Off Track"
)

// Inputs is a snapshot of the goal fields the engine reads.
type Inputs struct {
	CurrentAmount       decimal.Decimal
	TargetAmount        decimal.Decimal
	MonthlyContribution decimal.Decimal
	TargetYear          int
	TargetMonth         int // 1-12
}

// Projection is the derived value object. It has no lifecycle of its own:
// recomputed from a Goal snapshot on every render, never cached.
type Projection struct {
	MonthsRemaining int
	RequiredMonthly decimal.Decimal
	ProjectedFinal  decimal.Decimal
	OnTrack         bool
	WillMeetTarget  bool
	Shortfall       decimal.Decimal // required rate minus actual rate, floored at 0
	Surplus         decimal.Decimal // projected final minus target, floored at 0
	Status          Status
}

// Point is one sample of a projected value trajectory.
type Point struct {
	Month int
	Value decimal.Decimal
}

// MonthsRemaining returns the whole months from now to the first day of the
// target month, clamped to a minimum of 0. A past or current-month deadline
// yields 0, never a negative count.
func MonthsRemaining(targetYear, targetMonth int, now time.Time) int {
	months := (targetYear-now.Year())*12 + (targetMonth - int(now.Month()))
	if months < 0 {
		return 0
	}
	return months
}

// RequiredMonthly returns the contribution rate needed to close the remaining
// gap within the given months. An already-met goal requires 0. With no months
// left the entire gap is due now; returning it whole avoids a division by
// zero and signals "immediately insufficient".
func RequiredMonthly(remaining decimal.Decimal, monthsRemaining int) decimal.Decimal {
	if remaining.Sign() <= 0 {
		return decimal.Zero
	}
	if monthsRemaining > 0 {
		return remaining.Div(decimal.NewFromInt(int64(monthsRemaining)))
	}
	return remaining
}

// ProjectedFinal returns the simple-sum projected value at the deadline.
// Goal tracking treats contributions as additive savings without growth;
// compounding belongs to Simulate.
func ProjectedFinal(current, monthly decimal.Decimal, monthsRemaining int) decimal.Decimal {
	return current.Add(monthly.Mul(decimal.NewFromInt(int64(monthsRemaining))))
}

// Compute derives the full projection for a goal snapshot at the given time.
// Negative money inputs are clamped to zero before any arithmetic.
func Compute(in Inputs, now time.Time) Projection {
	current := clampMoney(in.CurrentAmount)
	target := clampMoney(in.TargetAmount)
	monthly := clampMoney(in.MonthlyContribution)

	months := MonthsRemaining(in.TargetYear, in.TargetMonth, now)
	remaining := target.Sub(current)
	required := RequiredMonthly(remaining, months)
	projected := ProjectedFinal(current, monthly, months)

	p := Projection{
		MonthsRemaining: months,
		RequiredMonthly: required,
		ProjectedFinal:  projected,
		OnTrack:         monthly.Cmp(required) >= 0,
		WillMeetTarget:  projected.Cmp(target) >= 0,
	}

	p.Shortfall = floorZero(required.Sub(monthly))
	p.Surplus = floorZero(projected.Sub(target))

	switch {
	case p.OnTrack && p.WillMeetTarget:
		p.Status = StatusOnTrack
	case p.OnTrack:
		p.Status = StatusNeedsAdjustment
	default:
		p.Status = StatusOffTrack
	}

	return p
}

// Trajectory samples the simple-sum projected value every stepMonths from
// month 0 to monthsRemaining inclusive. The final month is always included
// even when it does not fall on a step boundary.
func Trajectory(current, monthly decimal.Decimal, monthsRemaining, stepMonths int) []Point {
	current = clampMoney(current)
	monthly = clampMoney(monthly)
	if monthsRemaining < 0 {
		monthsRemaining = 0
	}
	if stepMonths < 1 {
		stepMonths = 1
	}

	var points []Point
	for m := 0; m <= monthsRemaining; m += stepMonths {
		points = append(points, Point{
			Month: m,
			Value: ProjectedFinal(current, monthly, m),
		})
	}
	if last := points[len(points)-1]; last.Month != monthsRemaining {
		points = append(points, Point{
			Month: monthsRemaining,
			Value: ProjectedFinal(current, monthly, monthsRemaining),
		})
	}
	return points
}

// RetirementTarget derives a retirement goal's target amount from expected
// monthly needs and the years the fund must cover.
func RetirementTarget(monthlyNeeds decimal.Decimal, yearsAfterRetirement int) decimal.Decimal {
	if yearsAfterRetirement < 0 {
		yearsAfterRetirement = 0
	}
	return clampMoney(monthlyNeeds).Mul(decimal.NewFromInt(int64(yearsAfterRetirement) * 12))
}

func clampMoney(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}
