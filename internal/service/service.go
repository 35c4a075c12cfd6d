package service

import (
	"context"
	"time"

	"carebook-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, ndisNumber, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type ListingService interface {
	GetListing(ctx context.Context, id int64) (*domain.Listing, error)
	ListListings(ctx context.Context, category string, maxRate decimal.Decimal, page, pageSize int32) ([]domain.Listing, int32, error)
}

type WalletService interface {
	GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
}

// CreateBookingInput carries the booking request from the detail screen's
// price quote: the total splits into the NDIS-covered amount debited from
// the named funding category and the out-of-pocket gap payment.
type CreateBookingInput struct {
	ListingID         int64
	ScheduledAt       time.Time
	TotalPrice        decimal.Decimal
	NDISCoveredAmount decimal.Decimal
	GapPayment        decimal.Decimal
	Notes             string
	Category          string
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID int64, in CreateBookingInput) (*domain.Booking, *domain.Claim, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type ClaimService interface {
	ListClaims(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Claim, int32, error)
	LapseExpiredClaims(ctx context.Context) (int64, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name, listingTitle string, scheduledAt time.Time, coveredAmount, gapPayment decimal.Decimal) error
	SendBookingReminder(ctx context.Context, email, name, listingTitle string, scheduledAt time.Time) error
}
