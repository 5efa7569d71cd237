package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		goalType GoalType
		name     string
		want     GoalCategory
	}{
		{GoalRetirement, "whatever", CategoryRetirement},
		{GoalOther, "Dream House", CategoryHome},
		{GoalOther, "Beli rumah", CategoryHome},
		{GoalOther, "Kids college fund", CategoryEducation},
		{GoalOther, "Bali trip", CategoryVacation},
		{GoalOther, "Emergency fund", CategoryEmergency},
		{GoalOther, "Coffee startup", CategoryBusiness},
		{GoalOther, "New guitar", CategoryCustom},
	}
	for _, c := range cases {
		if got := Categorize(c.goalType, c.name); got != c.want {
			t.Errorf("Categorize(%s, %q) = %s, want %s", c.goalType, c.name, got, c.want)
		}
	}
}

func TestGoal_TargetYearMonth(t *testing.T) {
	g := Goal{TargetDate: time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)}
	y, m := g.TargetYearMonth()
	if y != 2030 || m != 6 {
		t.Errorf("got (%d, %d), want (2030, 6)", y, m)
	}
}

func TestGoalTracking_ProgressPct(t *testing.T) {
	tr := GoalTracking{
		TargetAmount:      decimal.NewFromInt(100),
		ActualValueToDate: decimal.NewFromInt(25),
	}
	if got := tr.ProgressPct(); got != 0.25 {
		t.Errorf("ProgressPct() = %v, want 0.25", got)
	}

	tr.ActualValueToDate = decimal.NewFromInt(150)
	if got := tr.ProgressPct(); got != 1 {
		t.Errorf("overfunded goal should cap at 1, got %v", got)
	}

	tr.TargetAmount = decimal.Zero
	if got := tr.ProgressPct(); got != 0 {
		t.Errorf("zero target should yield 0, got %v", got)
	}
}

func TestProduct_UnitsFor(t *testing.T) {
	p := Product{NAVPrice: decimal.NewFromInt(1500)}

	units := p.UnitsFor(decimal.NewFromInt(1_000_000))
	want := decimal.RequireFromString("666.666667")
	if !units.Equal(want) {
		t.Errorf("UnitsFor(1000000) = %s, want %s", units, want)
	}

	zeroNAV := Product{}
	if got := zeroNAV.UnitsFor(decimal.NewFromInt(100)); !got.IsZero() {
		t.Errorf("zero NAV should yield zero units, got %s", got)
	}
}
