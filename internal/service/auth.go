package service

import (
	"context"
	"errors"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"
	"carebook-backend/internal/security"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type authService struct {
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
	tokens     security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, walletRepo repository.WalletRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		tokens:     tokens,
	}
}

// Signup registers a participant and provisions an empty wallet. Category
// balances arrive later through the plan-manager import, not this path.
func (s *authService) Signup(ctx context.Context, name, email, phone, ndisNumber, password string) (*domain.User, string, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PhoneNumber:  phone,
		NDISNumber:   ndisNumber,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	wallet := &domain.Wallet{
		UserID:            user.ID,
		TotalBalance:      decimal.Zero,
		CategoryBreakdown: map[string]decimal.Decimal{},
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.tokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}
	return s.tokenPair(user)
}

func (s *authService) tokenPair(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
