package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"carebook-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWallet_CategoryBalance(t *testing.T) {
	w := &domain.Wallet{
		TotalBalance: decimal.NewFromInt(1000),
		CategoryBreakdown: map[string]decimal.Decimal{
			domain.CategoryCoreSupports:    decimal.NewFromInt(500),
			domain.CategoryCapitalSupports: decimal.NewFromInt(500),
		},
	}

	assert.True(t, w.CategoryBalance(domain.CategoryCoreSupports).Equal(decimal.NewFromInt(500)))
	assert.True(t, w.CategoryBalance("transport").IsZero())
	assert.True(t, w.CategorySum().Equal(w.TotalBalance))
}

func TestWallet_CategorySumEmpty(t *testing.T) {
	w := &domain.Wallet{}
	assert.True(t, w.CategorySum().IsZero())
}

func TestInsufficientFundsError(t *testing.T) {
	err := &domain.InsufficientFundsError{
		Category:  domain.CategoryCoreSupports,
		Available: decimal.NewFromInt(100),
		Requested: decimal.NewFromInt(200),
	}

	assert.Equal(t, "insufficient funds in category core: available 100.00, requested 200.00", err.Error())
	assert.True(t, domain.IsInsufficientFunds(err))
	assert.True(t, domain.IsInsufficientFunds(fmt.Errorf("create booking: %w", err)))
	assert.False(t, domain.IsInsufficientFunds(errors.New("other")))
	assert.False(t, domain.IsInsufficientFunds(domain.ErrWalletNotFound))
}
