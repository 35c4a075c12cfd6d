package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound means no wallet row exists for the participant.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrListingNotFound means the requested service listing does not exist
	// or is no longer active.
	ErrListingNotFound = errors.New("listing not found")

	// ErrBookingNotFound means the requested booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
)

// InsufficientFundsError reports a category balance short of the requested
// debit. Available is the balance at the time of the check; an absent
// category reports zero.
type InsufficientFundsError struct {
	Category  string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in category %s: available %s, requested %s",
		e.Category, e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

// IsInsufficientFunds reports whether err is an InsufficientFundsError.
func IsInsufficientFunds(err error) bool {
	var ife *InsufficientFundsError
	return errors.As(err, &ife)
}
