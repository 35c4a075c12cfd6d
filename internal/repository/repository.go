package repository

import (
	"context"
	"time"

	"carebook-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) error
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	// GetByID returns the listing joined with the provider's display name.
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context, category string, maxRate decimal.Decimal, page, pageSize int32) ([]domain.Listing, int32, error)
	Update(ctx context.Context, listing *domain.Listing) error
}

type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
}

type BookingRepository interface {
	// CreateWithWalletUpdate atomically checks the wallet's balance for the
	// named funding category, inserts the booking, debits the wallet and
	// files the reimbursement claim. Either all effects commit or none do.
	// The booking's ID and status are populated on success.
	CreateWithWalletUpdate(ctx context.Context, booking *domain.Booking, category string) (*domain.Claim, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type ClaimRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Claim, error)
	ListByUser(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Claim, int32, error)
	// LapseExpired marks pending claims past their expiry as expired and
	// returns how many rows changed.
	LapseExpired(ctx context.Context, now time.Time) (int64, error)
}
