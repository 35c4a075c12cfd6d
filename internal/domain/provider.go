package domain

import "time"

// Provider is a registered support-service provider.
type Provider struct {
	ID           int64     `json:"id"`
	BusinessName string    `json:"business_name"`
	ABN          string    `json:"abn"`
	ContactEmail string    `json:"contact_email"`
	Verified     bool      `json:"verified"`
	CreatedOn    time.Time `json:"created_on"`
}
