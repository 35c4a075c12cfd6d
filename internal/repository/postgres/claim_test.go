package postgres_test

import (
	"context"
	"testing"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimRepository_LapseExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewClaimRepository(db)
	now := time.Date(2026, 8, 25, 2, 0, 0, 0, time.UTC)

	t.Run("MarksOnlyPendingPastExpiry", func(t *testing.T) {
		mock.ExpectExec("UPDATE claims SET status").
			WithArgs(domain.ClaimStatusExpired, domain.ClaimStatusPending, now).
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.LapseExpired(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("NothingToLapse", func(t *testing.T) {
		mock.ExpectExec("UPDATE claims SET status").
			WithArgs(domain.ClaimStatusExpired, domain.ClaimStatusPending, now).
			WillReturnResult(sqlmock.NewResult(0, 0))

		count, err := repo.LapseExpired(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewClaimRepository(db)

	cols := []string{"id", "reference", "user_id", "booking_id", "amount", "category", "status", "expires_on", "created_on"}

	t.Run("FilterByStatus", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs(int64(1), string(domain.ClaimStatusPending)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT id, reference, user_id, booking_id").
			WithArgs(int64(1), string(domain.ClaimStatusPending), int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(9, "2d5a7a0e-3d2f-4c3a-b2ff-0a5a1c2d3e4f", 1, 42, "200", "core", "PENDING", testTime(), testTime()))

		claims, total, err := repo.ListByUser(context.Background(), 1, string(domain.ClaimStatusPending), 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(1), total)
		require.Len(t, claims, 1)
		assert.Equal(t, int64(42), claims[0].BookingID)
		assert.True(t, claims[0].Amount.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, domain.ClaimStatusPending, claims[0].Status)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
