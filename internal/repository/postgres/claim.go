package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"
)

type claimRepository struct {
	db *sql.DB
}

func NewClaimRepository(db *sql.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) GetByID(ctx context.Context, id int64) (*domain.Claim, error) {
	c := &domain.Claim{}
	query := `SELECT id, reference, user_id, booking_id, amount, category, status, expires_on, created_on FROM claims WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Reference, &c.UserID, &c.BookingID, &c.Amount, &c.Category, &c.Status, &c.ExpiresOn, &c.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *claimRepository) ListByUser(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Claim, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, reference, user_id, booking_id, amount, category, status, expires_on, created_on
	          FROM claims WHERE user_id = $1`
	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var claims []domain.Claim
	for rows.Next() {
		var c domain.Claim
		if err := rows.Scan(&c.ID, &c.Reference, &c.UserID, &c.BookingID, &c.Amount, &c.Category, &c.Status, &c.ExpiresOn, &c.CreatedOn); err != nil {
			return nil, 0, err
		}
		claims = append(claims, c)
	}
	return claims, count, rows.Err()
}

func (r *claimRepository) LapseExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE claims SET status = $1 WHERE status = $2 AND expires_on < $3`
	res, err := r.db.ExecContext(ctx, query, domain.ClaimStatusExpired, domain.ClaimStatusPending, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
