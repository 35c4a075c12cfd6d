package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoActiveTransaction is returned when Commit or Rollback is called on a
// unit of work that has already finished. It signals caller misuse, not a
// domain failure.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWork wraps a database transaction so multi-statement sequences can be
// driven explicitly by a caller. Single atomic operations such as
// CreateWithWalletUpdate open their own unit of work internally.
type UnitOfWork struct {
	tx *sql.Tx
}

// Begin opens a new unit of work against the store's database.
func (s *Store) Begin(ctx context.Context) (*UnitOfWork, error) {
	return beginUnitOfWork(ctx, s.db)
}

func beginUnitOfWork(ctx context.Context, db *sql.DB) (*UnitOfWork, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &UnitOfWork{tx: tx}, nil
}

// Tx exposes the underlying transaction for statement execution.
func (u *UnitOfWork) Tx() *sql.Tx {
	return u.tx
}

// Commit finalizes all pending writes.
func (u *UnitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return ErrNoActiveTransaction
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback discards all pending writes. Rolling back a finished unit of work
// is a no-op so it is safe to defer.
func (u *UnitOfWork) Rollback() error {
	if err := u.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return nil
		}
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}
