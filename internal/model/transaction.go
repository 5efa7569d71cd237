package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state reported by the gateway.
type TransactionStatus string

const (
	TxPending  TransactionStatus = "pending"
	TxSettled  TransactionStatus = "settled"
	TxRejected TransactionStatus = "rejected"
)

// Transaction is one row of a customer's order history.
type Transaction struct {
	ID          string
	Date        time.Time
	Type        string // buy / sell
	ProductName string
	Amount      decimal.Decimal
	Units       decimal.Decimal // up to 6 decimals
	NAVPrice    decimal.Decimal
	Platform    string
	Status      TransactionStatus
}

// DashboardSummary is the aggregate portfolio snapshot computed server-side.
type DashboardSummary struct {
	TotalValue decimal.Decimal
	Breakdown  []HoldingBreakdown
}

// HoldingBreakdown is one product position within the portfolio summary.
type HoldingBreakdown struct {
	ProductID string
	Units     decimal.Decimal
	NAV       decimal.Decimal
	Value     decimal.Decimal
}

// TrendPoint is one day of the portfolio value series.
type TrendPoint struct {
	Date  time.Time
	Value decimal.Decimal
}
