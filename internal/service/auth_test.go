package service_test

import (
	"context"
	"errors"
	"testing"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/security"
	"carebook-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60, 10080)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		walletRepo := new(MockWalletRepository)
		svc := service.NewAuthService(userRepo, walletRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alex@example.com").Return(nil, errors.New("not found"))
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).
			Return(nil)
		walletRepo.On("Create", ctx, mock.AnythingOfType("*domain.Wallet")).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Alex", "alex@example.com", "0400000000", "431234567", "hunter22pass")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		// The stored hash verifies against the original password.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22pass")))

		// A fresh wallet starts empty; balances arrive via plan import.
		wallet := walletRepo.Calls[0].Arguments.Get(1).(*domain.Wallet)
		assert.Equal(t, int64(1), wallet.UserID)
		assert.True(t, wallet.TotalBalance.IsZero())
		assert.Empty(t, wallet.CategoryBreakdown)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, new(MockWalletRepository), tokens)

		userRepo.On("GetByEmail", ctx, "alex@example.com").Return(&domain.User{ID: 1}, nil)

		_, _, _, err := svc.Signup(ctx, "Alex", "alex@example.com", "", "", "hunter22pass")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60, 10080)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 1, Email: "alex@example.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, new(MockWalletRepository), tokens)
		userRepo.On("GetByEmail", ctx, "alex@example.com").Return(stored, nil)

		access, refresh, err := svc.Login(ctx, "alex@example.com", "hunter22pass")
		require.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)

		claims, err = tokens.ValidateToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, new(MockWalletRepository), tokens)
		userRepo.On("GetByEmail", ctx, "alex@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "alex@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, new(MockWalletRepository), tokens)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, errors.New("not found"))

		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter22pass")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60, 10080)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := service.NewAuthService(userRepo, new(MockWalletRepository), tokens)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "alex@example.com"}, nil)

		refresh, err := tokens.GenerateRefreshToken(1, "alex@example.com")
		require.NoError(t, err)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepository), new(MockWalletRepository), tokens)

		access, err := tokens.GenerateAccessToken(1, "alex@example.com")
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
