package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	if w.CategoryBreakdown == nil {
		w.CategoryBreakdown = map[string]decimal.Decimal{}
	}
	breakdown, err := json.Marshal(w.CategoryBreakdown)
	if err != nil {
		return fmt.Errorf("encode category breakdown: %w", err)
	}
	now := time.Now()
	query := `INSERT INTO wallets (user_id, total_balance, category_breakdown, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, w.UserID, w.TotalBalance, breakdown, now, now).Scan(&w.ID)
}

func (r *walletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var rawBreakdown []byte
	query := `SELECT id, user_id, total_balance, category_breakdown, created_on, updated_on FROM wallets WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&w.ID, &w.UserID, &w.TotalBalance, &rawBreakdown, &w.CreatedOn, &w.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, domain.ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}
	w.CategoryBreakdown = map[string]decimal.Decimal{}
	if len(rawBreakdown) > 0 {
		if err := json.Unmarshal(rawBreakdown, &w.CategoryBreakdown); err != nil {
			return nil, fmt.Errorf("decode category breakdown: %w", err)
		}
	}
	return w, nil
}
