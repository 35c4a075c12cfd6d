package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the per-participant ledger of NDIS plan funding. TotalBalance is
// kept equal to the sum of the category balances by every mutation path in
// this module.
type Wallet struct {
	ID                int64                      `json:"id"`
	UserID            int64                      `json:"user_id"`
	TotalBalance      decimal.Decimal            `json:"total_balance"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
	CreatedOn         time.Time                  `json:"created_on"`
	UpdatedOn         time.Time                  `json:"updated_on"`
}

// CategoryBalance returns the available balance for a funding category.
// An absent category is treated as a zero balance.
func (w *Wallet) CategoryBalance(category string) decimal.Decimal {
	return w.CategoryBreakdown[category]
}

// CategorySum adds up all category balances. Used to assert the
// total-equals-sum invariant.
func (w *Wallet) CategorySum() decimal.Decimal {
	sum := decimal.Zero
	for _, b := range w.CategoryBreakdown {
		sum = sum.Add(b)
	}
	return sum
}
