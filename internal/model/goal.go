// Package model defines domain types for goals, products, transactions, and
// the customer profile as served by the wealth gateway.
package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GoalType is the gateway's coarse goal classification.
type GoalType string

const (
	GoalRetirement GoalType = "RETIREMENT"
	GoalOther      GoalType = "OTHER"
)

// GoalCategory is a display-only grouping for non-retirement goals.
// Nothing but the accent color depends on it.
type GoalCategory string

const (
	CategoryRetirement GoalCategory = "Retirement"
	CategoryHome       GoalCategory = "Home"
	CategoryEducation  GoalCategory = "Education"
	CategoryVacation   GoalCategory = "Vacation"
	CategoryEmergency  GoalCategory = "Emergency"
	CategoryBusiness   GoalCategory = "Business"
	CategoryCustom     GoalCategory = "Custom"
)

// Categories lists the fixed category enumeration in display order.
var Categories = []GoalCategory{
	CategoryRetirement,
	CategoryHome,
	CategoryEducation,
	CategoryVacation,
	CategoryEmergency,
	CategoryBusiness,
	CategoryCustom,
}

// Categorize infers the display category from the goal type and name. The
// gateway only stores RETIREMENT vs OTHER, so non-retirement goals are
// grouped by name keywords.
func Categorize(t GoalType, name string) GoalCategory {
	if t == GoalRetirement {
		return CategoryRetirement
	}
	n := strings.ToLower(name)
	switch {
	case containsAny(n, "home", "house", "rumah", "apartment"):
		return CategoryHome
	case containsAny(n, "education", "school", "college", "university", "tuition"):
		return CategoryEducation
	case containsAny(n, "vacation", "travel", "trip", "holiday"):
		return CategoryVacation
	case containsAny(n, "emergency", "rainy"):
		return CategoryEmergency
	case containsAny(n, "business", "startup"):
		return CategoryBusiness
	}
	return CategoryCustom
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Goal is a savings target owned by the gateway. IDs are assigned on
// creation and immutable; CurrentAmount is refreshed from the tracking
// endpoint and treated as read-mostly here.
type Goal struct {
	ID           string
	Type         GoalType
	Name         string
	Category     GoalCategory
	TargetAmount decimal.Decimal
	TargetDate   time.Time // first day of the deadline month
	CreatedAt    time.Time

	// MonthlyContribution is a client-local what-if input for projection;
	// the gateway does not persist it.
	MonthlyContribution decimal.Decimal
}

// TargetYearMonth splits the deadline into the calendar pair the projection
// engine consumes.
func (g Goal) TargetYearMonth() (int, int) {
	return g.TargetDate.Year(), int(g.TargetDate.Month())
}

// TrackingStatus mirrors the server-computed goal status. Displayed
// verbatim, never recomputed client-side.
type TrackingStatus string

const (
	TrackingOnTrack  TrackingStatus = "ON_TRACK"
	TrackingOffTrack TrackingStatus = "OFF_TRACK"
)

// GoalTracking is the server-authoritative progress row for one goal.
type GoalTracking struct {
	GoalID              string
	GoalType            GoalType
	GoalName            string
	CreatedDate         time.Time
	TargetDate          time.Time
	TargetAmount        decimal.Decimal
	ExpectedValueToDate decimal.Decimal
	ActualValueToDate   decimal.Decimal
	ShortfallPct        float64
	Status              TrackingStatus
	StatusMessage       string
}

// ProgressPct returns actual/target as a 0-1 fraction, capped at 1.
func (t GoalTracking) ProgressPct() float64 {
	if t.TargetAmount.Sign() <= 0 {
		return 0
	}
	pct := t.ActualValueToDate.Div(t.TargetAmount).InexactFloat64()
	if pct > 1 {
		return 1
	}
	if pct < 0 {
		return 0
	}
	return pct
}
