package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/wealth/internal/model"
)

func openTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshot_GoalsRoundTrip(t *testing.T) {
	s := openTestSnapshot(t)

	goals := []model.Goal{
		{
			ID:           "g-1",
			Type:         model.GoalOther,
			Name:         "House Down Payment",
			TargetAmount: decimal.RequireFromString("60000000"),
			TargetDate:   time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "g-2",
			Type:         model.GoalRetirement,
			Name:         "Retirement",
			TargetAmount: decimal.RequireFromString("3600000000"),
			TargetDate:   time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	if err := s.SaveGoals("c-1", goals); err != nil {
		t.Fatalf("SaveGoals: %v", err)
	}

	got, err := s.LoadGoals("c-1")
	if err != nil {
		t.Fatalf("LoadGoals: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d goals, want 2", len(got))
	}
	if !got[0].TargetAmount.Equal(goals[0].TargetAmount) {
		t.Fatalf("TargetAmount = %s, want %s (must round-trip exactly)", got[0].TargetAmount, goals[0].TargetAmount)
	}
	if !got[0].TargetDate.Equal(goals[0].TargetDate) {
		t.Fatalf("TargetDate = %s, want %s", got[0].TargetDate, goals[0].TargetDate)
	}

	// Saving again replaces rather than appends.
	if err := s.SaveGoals("c-1", goals[:1]); err != nil {
		t.Fatalf("SaveGoals replace: %v", err)
	}
	got, err = s.LoadGoals("c-1")
	if err != nil {
		t.Fatalf("LoadGoals: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("loaded %d goals after replace, want 1", len(got))
	}

	// Other customers are unaffected.
	other, err := s.LoadGoals("c-2")
	if err != nil {
		t.Fatalf("LoadGoals other customer: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("loaded %d goals for other customer, want 0", len(other))
	}
}

func TestSnapshot_TrackingRoundTrip(t *testing.T) {
	s := openTestSnapshot(t)

	rows := []model.GoalTracking{{
		GoalID:              "g-1",
		GoalType:            model.GoalOther,
		GoalName:            "House",
		TargetDate:          time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
		TargetAmount:        decimal.RequireFromString("60000000"),
		ExpectedValueToDate: decimal.RequireFromString("10000000"),
		ActualValueToDate:   decimal.RequireFromString("12500000.500001"),
		ShortfallPct:        0,
		Status:              model.TrackingOnTrack,
		StatusMessage:       "ahead of schedule",
	}}

	if err := s.SaveTracking("c-1", rows); err != nil {
		t.Fatalf("SaveTracking: %v", err)
	}

	got, err := s.LoadTracking("c-1")
	if err != nil {
		t.Fatalf("LoadTracking: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("loaded %d rows, want 1", len(got))
	}
	if !got[0].ActualValueToDate.Equal(rows[0].ActualValueToDate) {
		t.Fatalf("ActualValueToDate = %s, want %s", got[0].ActualValueToDate, rows[0].ActualValueToDate)
	}
	if got[0].Status != model.TrackingOnTrack || got[0].StatusMessage != "ahead of schedule" {
		t.Fatalf("status round trip mismatch: %+v", got[0])
	}
}

func TestSnapshot_TransactionsSortedNewestFirst(t *testing.T) {
	s := openTestSnapshot(t)

	txs := []model.Transaction{
		{
			ID: "t-old", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			Type: "buy", ProductName: "Money Market Fund",
			Amount:   decimal.RequireFromString("1000000"),
			Units:    decimal.RequireFromString("99.123456"),
			NAVPrice: decimal.RequireFromString("10088.45"),
			Status:   model.TxSettled,
		},
		{
			ID: "t-new", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Type: "buy", ProductName: "Equity Fund",
			Amount:   decimal.RequireFromString("2000000"),
			Units:    decimal.RequireFromString("410.000001"),
			NAVPrice: decimal.RequireFromString("4878.04"),
			Status:   model.TxPending,
		},
	}

	if err := s.SaveTransactions("c-1", txs); err != nil {
		t.Fatalf("SaveTransactions: %v", err)
	}

	got, err := s.LoadTransactions("c-1")
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t-new" {
		t.Fatalf("expected newest-first ordering, got %+v", got)
	}
	if !got[0].Units.Equal(txs[1].Units) {
		t.Fatalf("Units = %s, want %s (6-decimal precision)", got[0].Units, txs[1].Units)
	}
}

func TestSnapshot_RefreshedAtAndClear(t *testing.T) {
	s := openTestSnapshot(t)

	stamp, err := s.RefreshedAt("c-1")
	if err != nil {
		t.Fatalf("RefreshedAt: %v", err)
	}
	if !stamp.IsZero() {
		t.Fatalf("RefreshedAt = %s for empty snapshot, want zero", stamp)
	}

	if err := s.SaveGoals("c-1", nil); err != nil {
		t.Fatalf("SaveGoals: %v", err)
	}
	stamp, err = s.RefreshedAt("c-1")
	if err != nil {
		t.Fatalf("RefreshedAt: %v", err)
	}
	if stamp.IsZero() {
		t.Fatal("RefreshedAt still zero after save")
	}

	if err := s.Clear("c-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	stamp, err = s.RefreshedAt("c-1")
	if err != nil {
		t.Fatalf("RefreshedAt: %v", err)
	}
	if !stamp.IsZero() {
		t.Fatal("Clear did not remove snapshot metadata")
	}
}
