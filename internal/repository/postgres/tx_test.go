package postgres_test

import (
	"context"
	"testing"

	"carebook-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitTwiceReturnsNoActiveTransaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		uow, err := postgres.NewStore(db).Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit())
		assert.ErrorIs(t, uow.Commit(), postgres.ErrNoActiveTransaction)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackAfterCommitIsNoOp", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		uow, err := postgres.NewStore(db).Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit())
		assert.NoError(t, uow.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackDiscardsWrites", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE wallets SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		uow, err := postgres.NewStore(db).Begin(ctx)
		require.NoError(t, err)
		_, err = uow.Tx().ExecContext(ctx, "UPDATE wallets SET total_balance = 0")
		require.NoError(t, err)
		assert.NoError(t, uow.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
