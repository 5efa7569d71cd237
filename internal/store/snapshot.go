// Package store provides a SQLite-backed snapshot of gateway data so read
// commands can render instantly (and work offline) between refreshes.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/wealth/internal/model"
)

// Snapshot holds the local copy of one or more customers' gateway data.
type Snapshot struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Snapshot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Close closes the snapshot database.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// SaveGoals replaces the stored goal list for a customer.
func (s *Snapshot) SaveGoals(customerID string, goals []model.Goal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM goals WHERE customer_id = ?", customerID); err != nil {
		return err
	}

	for _, g := range goals {
		_, err := tx.Exec(`INSERT OR REPLACE INTO goals
			(goal_id, customer_id, goal_type, goal_name, target_amount, target_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, customerID, string(g.Type), g.Name, g.TargetAmount.String(),
			formatTime(g.TargetDate), formatTime(g.CreatedAt),
		)
		if err != nil {
			return err
		}
	}

	if err := touchMeta(tx, customerID); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadGoals reads the stored goal list for a customer.
func (s *Snapshot) LoadGoals(customerID string) ([]model.Goal, error) {
	rows, err := s.db.Query(`SELECT goal_id, goal_type, goal_name, target_amount, target_date, created_at
		FROM goals WHERE customer_id = ?`, customerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		var goalType, amount, targetDate, createdAt string
		if err := rows.Scan(&g.ID, &goalType, &g.Name, &amount, &targetDate, &createdAt); err != nil {
			return nil, err
		}
		g.Type = model.GoalType(goalType)
		g.Category = model.Categorize(g.Type, g.Name)
		if g.TargetAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parsing stored amount for goal %s: %w", g.ID, err)
		}
		g.TargetDate = parseTime(targetDate)
		g.CreatedAt = parseTime(createdAt)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// SaveTracking replaces the stored tracking rows for a customer.
func (s *Snapshot) SaveTracking(customerID string, rows []model.GoalTracking) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM goal_tracking WHERE customer_id = ?", customerID); err != nil {
		return err
	}

	for _, t := range rows {
		_, err := tx.Exec(`INSERT OR REPLACE INTO goal_tracking
			(goal_id, customer_id, goal_type, goal_name, created_date, target_date,
			 target_amount, expected_value, actual_value, shortfall_pct, status, status_message)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.GoalID, customerID, string(t.GoalType), t.GoalName,
			formatTime(t.CreatedDate), formatTime(t.TargetDate),
			t.TargetAmount.String(), t.ExpectedValueToDate.String(), t.ActualValueToDate.String(),
			t.ShortfallPct, string(t.Status), t.StatusMessage,
		)
		if err != nil {
			return err
		}
	}

	if err := touchMeta(tx, customerID); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadTracking reads the stored tracking rows for a customer.
func (s *Snapshot) LoadTracking(customerID string) ([]model.GoalTracking, error) {
	rows, err := s.db.Query(`SELECT goal_id, goal_type, goal_name, created_date, target_date,
		target_amount, expected_value, actual_value, shortfall_pct, status, status_message
		FROM goal_tracking WHERE customer_id = ?`, customerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.GoalTracking
	for rows.Next() {
		var t model.GoalTracking
		var goalType, createdDate, targetDate, amount, expected, actual, status string
		var statusMessage sql.NullString
		err := rows.Scan(&t.GoalID, &goalType, &t.GoalName, &createdDate, &targetDate,
			&amount, &expected, &actual, &t.ShortfallPct, &status, &statusMessage)
		if err != nil {
			return nil, err
		}
		t.GoalType = model.GoalType(goalType)
		t.CreatedDate = parseTime(createdDate)
		t.TargetDate = parseTime(targetDate)
		if t.TargetAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		if t.ExpectedValueToDate, err = decimal.NewFromString(expected); err != nil {
			return nil, err
		}
		if t.ActualValueToDate, err = decimal.NewFromString(actual); err != nil {
			return nil, err
		}
		t.Status = model.TrackingStatus(status)
		if statusMessage.Valid {
			t.StatusMessage = statusMessage.String
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SaveTransactions replaces the stored transaction history for a customer.
func (s *Snapshot) SaveTransactions(customerID string, txs []model.Transaction) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback() }()

	if _, err := dbTx.Exec("DELETE FROM transactions WHERE customer_id = ?", customerID); err != nil {
		return err
	}

	for _, t := range txs {
		_, err := dbTx.Exec(`INSERT OR REPLACE INTO transactions
			(transaction_id, customer_id, tx_date, tx_type, product_name,
			 amount, units, nav_price, platform, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, customerID, formatTime(t.Date), t.Type, t.ProductName,
			t.Amount.String(), t.Units.String(), t.NAVPrice.String(),
			t.Platform, string(t.Status),
		)
		if err != nil {
			return err
		}
	}

	if err := touchMeta(dbTx, customerID); err != nil {
		return err
	}
	return dbTx.Commit()
}

// LoadTransactions reads the stored transaction history for a customer.
func (s *Snapshot) LoadTransactions(customerID string) ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT transaction_id, tx_date, tx_type, product_name,
		amount, units, nav_price, platform, status
		FROM transactions WHERE customer_id = ? ORDER BY tx_date DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var date, amount, units, nav, status string
		err := rows.Scan(&t.ID, &date, &t.Type, &t.ProductName, &amount, &units, &nav, &t.Platform, &status)
		if err != nil {
			return nil, err
		}
		t.Date = parseTime(date)
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		if t.Units, err = decimal.NewFromString(units); err != nil {
			return nil, err
		}
		if t.NAVPrice, err = decimal.NewFromString(nav); err != nil {
			return nil, err
		}
		t.Status = model.TransactionStatus(status)
		out = append(out, t)
	}
	return out, rows.Err()
}

// RefreshedAt returns when the customer's snapshot was last written.
// The zero time means nothing is stored yet.
func (s *Snapshot) RefreshedAt(customerID string) (time.Time, error) {
	var stamp string
	err := s.db.QueryRow("SELECT refreshed_at FROM snapshot_meta WHERE customer_id = ?", customerID).Scan(&stamp)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return parseTime(stamp), nil
}

// Clear removes all snapshot data for a customer, used on logout.
func (s *Snapshot) Clear(customerID string) error {
	for _, stmt := range []string{
		"DELETE FROM goals WHERE customer_id = ?",
		"DELETE FROM goal_tracking WHERE customer_id = ?",
		"DELETE FROM transactions WHERE customer_id = ?",
		"DELETE FROM snapshot_meta WHERE customer_id = ?",
	} {
		if _, err := s.db.Exec(stmt, customerID); err != nil {
			return err
		}
	}
	return nil
}

func touchMeta(tx *sql.Tx, customerID string) error {
	_, err := tx.Exec(`INSERT OR REPLACE INTO snapshot_meta (customer_id, refreshed_at)
		VALUES (?, ?)`, customerID, time.Now().UTC().Format(time.RFC3339))
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
