package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an investment product offered for a risk tier. NAV is the
// per-unit price supplied by the gateway's price feed.
type Product struct {
	ID            string
	Name          string
	Type          string
	ProductTypeID string
	NAVPrice      decimal.Decimal
	CutOffTime    string // e.g. "13:00"
	UpdatedAt     time.Time
}

// UnitsFor returns how many units the given amount buys at the current NAV,
// rounded to the gateway's 6-decimal unit precision. Zero NAV yields zero
// units rather than a division by zero.
func (p Product) UnitsFor(amount decimal.Decimal) decimal.Decimal {
	if p.NAVPrice.Sign() <= 0 || amount.Sign() <= 0 {
		return decimal.Zero
	}
	return amount.DivRound(p.NAVPrice, 6)
}
