package service

import (
	"context"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/logger"
	"carebook-backend/internal/repository"
)

type claimService struct {
	claimRepo repository.ClaimRepository
}

func NewClaimService(claimRepo repository.ClaimRepository) ClaimService {
	return &claimService{claimRepo: claimRepo}
}

func (s *claimService) ListClaims(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Claim, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.claimRepo.ListByUser(ctx, userID, status, page, pageSize)
}

// LapseExpiredClaims moves pending claims past their 90-day window to
// expired. Run nightly by the scheduler.
func (s *claimService) LapseExpiredClaims(ctx context.Context) (int64, error) {
	lapsed, err := s.claimRepo.LapseExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if lapsed > 0 {
		logger.Info("Lapsed expired claims", "count", lapsed, "status", domain.ClaimStatusExpired)
	}
	return lapsed, nil
}
