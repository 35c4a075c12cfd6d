package service

import (
	"context"
	"errors"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/logger"
	"carebook-backend/internal/repository"
)

var (
	ErrListingInactive    = errors.New("listing is not accepting bookings")
	ErrInvalidAmountSplit = errors.New("total price must equal covered amount plus gap payment")
	ErrInvalidAmount      = errors.New("amounts must not be negative")
	ErrMissingCategory    = errors.New("funding category is required")
	ErrScheduleInPast     = errors.New("scheduled time must be in the future")
	ErrBookingForbidden   = errors.New("booking belongs to another user")
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// CreateBooking validates the request and runs the booking ledger
// transaction. Two identical calls create two bookings and two debits; there
// is no deduplication key.
func (s *bookingService) CreateBooking(ctx context.Context, userID int64, in CreateBookingInput) (*domain.Booking, *domain.Claim, error) {
	if in.Category == "" {
		return nil, nil, ErrMissingCategory
	}
	if in.TotalPrice.IsNegative() || in.NDISCoveredAmount.IsNegative() || in.GapPayment.IsNegative() {
		return nil, nil, ErrInvalidAmount
	}
	if !in.NDISCoveredAmount.Add(in.GapPayment).Equal(in.TotalPrice) {
		return nil, nil, ErrInvalidAmountSplit
	}

	listing, err := s.listingRepo.GetByID(ctx, in.ListingID)
	if err != nil {
		return nil, nil, err
	}
	if !listing.Active {
		return nil, nil, ErrListingInactive
	}

	booking := &domain.Booking{
		UserID:            userID,
		ListingID:         in.ListingID,
		ScheduledAt:       in.ScheduledAt,
		TotalPrice:        in.TotalPrice,
		NDISCoveredAmount: in.NDISCoveredAmount,
		GapPayment:        in.GapPayment,
		Notes:             in.Notes,
	}
	claim, err := s.bookingRepo.CreateWithWalletUpdate(ctx, booking, in.Category)
	if err != nil {
		return nil, nil, err
	}

	// Confirmation email is best effort; the booking is already committed.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		if err := s.emailSvc.SendBookingConfirmation(ctx, user.Email, user.Name, listing.Title, booking.ScheduledAt, booking.NDISCoveredAmount, booking.GapPayment); err != nil {
			logger.Warn("Failed to send booking confirmation", "booking_id", booking.ID, "error", err)
		}
	}

	return booking, claim, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrBookingForbidden
	}
	return b, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByUser(ctx, userID, status, page, pageSize)
}
