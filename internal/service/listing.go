package service

import (
	"context"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type listingService struct {
	listingRepo repository.ListingRepository
}

func NewListingService(listingRepo repository.ListingRepository) ListingService {
	return &listingService{listingRepo: listingRepo}
}

func (s *listingService) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.listingRepo.GetByID(ctx, id)
}

func (s *listingService) ListListings(ctx context.Context, category string, maxRate decimal.Decimal, page, pageSize int32) ([]domain.Listing, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.listingRepo.List(ctx, category, maxRate, page, pageSize)
}
