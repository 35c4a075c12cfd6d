package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusPaid     ClaimStatus = "PAID"
	ClaimStatusExpired  ClaimStatus = "EXPIRED"
)

// ClaimExpiryPeriod is how long a participant has to lodge a reimbursement
// claim with the agency before it lapses.
const ClaimExpiryPeriod = 90 * 24 * time.Hour

// Claim is a reimbursement record filed against a booking. Exactly one claim
// is created per booking, in the same transaction.
type Claim struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	UserID    int64           `json:"user_id"`
	BookingID int64           `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Status    ClaimStatus     `json:"status"`
	ExpiresOn time.Time       `json:"expires_on"`
	CreatedOn time.Time       `json:"created_on"`
}
