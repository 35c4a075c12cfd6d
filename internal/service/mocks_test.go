package service_test

import (
	"context"
	"time"

	"carebook-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) List(ctx context.Context, category string, maxRate decimal.Decimal, page, pageSize int32) ([]domain.Listing, int32, error) {
	args := m.Called(ctx, category, maxRate, page, pageSize)
	var listings []domain.Listing
	if args.Get(0) != nil {
		listings = args.Get(0).([]domain.Listing)
	}
	return listings, args.Get(1).(int32), args.Error(2)
}

func (m *MockListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithWalletUpdate(ctx context.Context, booking *domain.Booking, category string) (*domain.Claim, error) {
	args := m.Called(ctx, booking, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	var bookings []domain.Booking
	if args.Get(0) != nil {
		bookings = args.Get(0).([]domain.Booking)
	}
	return bookings, args.Get(1).(int32), args.Error(2)
}

func (m *MockBookingRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	var bookings []domain.Booking
	if args.Get(0) != nil {
		bookings = args.Get(0).([]domain.Booking)
	}
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) GetByID(ctx context.Context, id int64) (*domain.Claim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimRepository) ListByUser(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Claim, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	var claims []domain.Claim
	if args.Get(0) != nil {
		claims = args.Get(0).([]domain.Claim)
	}
	return claims, args.Get(1).(int32), args.Error(2)
}

func (m *MockClaimRepository) LapseExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name, listingTitle string, scheduledAt time.Time, coveredAmount, gapPayment decimal.Decimal) error {
	args := m.Called(ctx, email, name, listingTitle, scheduledAt, coveredAmount, gapPayment)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingReminder(ctx context.Context, email, name, listingTitle string, scheduledAt time.Time) error {
	args := m.Called(ctx, email, name, listingTitle, scheduledAt)
	return args.Error(0)
}
