package service

import (
	"context"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"
)

type walletService struct {
	walletRepo repository.WalletRepository
}

func NewWalletService(walletRepo repository.WalletRepository) WalletService {
	return &walletService{walletRepo: walletRepo}
}

func (s *walletService) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	return s.walletRepo.GetByUserID(ctx, userID)
}
