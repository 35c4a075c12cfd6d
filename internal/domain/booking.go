package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a scheduled purchase of a support service by a participant.
// TotalPrice splits into the NDIS-covered amount debited from the wallet and
// the out-of-pocket gap payment.
type Booking struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"user_id"`
	ListingID         int64           `json:"listing_id"`
	ScheduledAt       time.Time       `json:"scheduled_at"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	NDISCoveredAmount decimal.Decimal `json:"ndis_covered_amount"`
	GapPayment        decimal.Decimal `json:"gap_payment"`
	Notes             string          `json:"notes"`
	Status            BookingStatus   `json:"status"`
	CreatedOn         time.Time       `json:"created_on"`
	UpdatedOn         time.Time       `json:"updated_on"`
}
