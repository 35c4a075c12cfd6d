package postgres

import (
	"database/sql"

	"carebook-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProviderRepository
	repository.ListingRepository
	repository.WalletRepository
	repository.BookingRepository
	repository.ClaimRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		ProviderRepository: NewProviderRepository(db),
		ListingRepository:  NewListingRepository(db),
		WalletRepository:   NewWalletRepository(db),
		BookingRepository:  NewBookingRepository(db),
		ClaimRepository:    NewClaimRepository(db),
	}
}
