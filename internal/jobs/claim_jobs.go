package jobs

import (
	"context"

	"carebook-backend/internal/logger"
)

// LapseExpiredClaims moves pending claims past their 90-day expiry to
// EXPIRED. Runs nightly.
func (jr *JobRunner) LapseExpiredClaims() {
	jr.runWithRecovery("lapse-expired-claims", func() {
		lapsed, err := jr.services.Claim.LapseExpiredClaims(context.Background())
		if err != nil {
			logger.Error("Failed to lapse expired claims", "error", err)
			return
		}
		logger.Info("Expired claims lapsed", "count", lapsed)
	})
}
