package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Support categories a listing can be funded from. The set is open: plan
// managers can introduce new buckets, so category is validated as non-empty
// at the boundary rather than against a closed enum.
const (
	CategoryCoreSupports        = "core"
	CategoryCapacityBuilding    = "capacity_building"
	CategoryCapitalSupports     = "capital"
	CategorySocialParticipation = "social_participation"
)

// Listing is a support service offered by a provider, shown in the browse
// and detail screens of the app.
type Listing struct {
	ID           int64           `json:"id"`
	ProviderID   int64           `json:"provider_id"`
	ProviderName string          `json:"provider_name,omitempty"` // populated on detail fetch
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Location     string          `json:"location"`
	Active       bool            `json:"active"`
	CreatedOn    time.Time       `json:"created_on"`
	UpdatedOn    time.Time       `json:"updated_on"`
}
