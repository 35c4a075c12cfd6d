package security_test

import (
	"testing"

	"carebook-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 10080)

	t.Run("AccessToken", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(42, "alex@example.com")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "alex@example.com", claims.Email)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, "carebook-backend", claims.Issuer)
	})

	t.Run("RefreshToken", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(42, "alex@example.com")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	})
}

func TestTokenManager_Validate(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 10080)

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := security.NewTokenManager("another-secret-entirely-0123456789ab", 60, 10080)
		token, err := other.GenerateAccessToken(42, "alex@example.com")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := security.NewTokenManager(testSecret, -1, -1)
		token, err := expired.GenerateAccessToken(42, "alex@example.com")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, security.ErrExpiredToken)
	})
}
