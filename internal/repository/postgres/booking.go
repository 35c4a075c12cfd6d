package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// CreateWithWalletUpdate performs the booking ledger transaction as one
// atomic unit: lock the wallet row, check the category balance, insert the
// booking, debit the wallet total and the matched category, insert the
// reimbursement claim. The row lock keeps a concurrent caller from reading a
// stale balance between the check and the debit.
func (r *bookingRepository) CreateWithWalletUpdate(ctx context.Context, b *domain.Booking, category string) (*domain.Claim, error) {
	uow, err := beginUnitOfWork(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()
	tx := uow.Tx()

	var (
		walletID     int64
		totalBalance decimal.Decimal
		rawBreakdown []byte
	)
	query := `SELECT id, total_balance, category_breakdown FROM wallets WHERE user_id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, b.UserID).Scan(&walletID, &totalBalance, &rawBreakdown)
	if err == sql.ErrNoRows {
		return nil, domain.ErrWalletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock wallet: %w", err)
	}

	breakdown := map[string]decimal.Decimal{}
	if len(rawBreakdown) > 0 {
		if err := json.Unmarshal(rawBreakdown, &breakdown); err != nil {
			return nil, fmt.Errorf("decode category breakdown: %w", err)
		}
	}

	// Absent category reads as zero. The same map key is used for the check
	// and the debit below, so the two can never address different buckets.
	available := breakdown[category]
	if available.LessThan(b.NDISCoveredAmount) {
		return nil, &domain.InsufficientFundsError{
			Category:  category,
			Available: available,
			Requested: b.NDISCoveredAmount,
		}
	}

	now := time.Now()
	b.Status = domain.BookingStatusPending
	insertBooking := `INSERT INTO bookings (user_id, listing_id, scheduled_at, total_price, ndis_covered_amount, gap_payment, notes, status, created_on, updated_on)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err = tx.QueryRowContext(ctx, insertBooking,
		b.UserID, b.ListingID, b.ScheduledAt, b.TotalPrice, b.NDISCoveredAmount, b.GapPayment, b.Notes, b.Status, now, now,
	).Scan(&b.ID)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	b.CreatedOn = now
	b.UpdatedOn = now

	breakdown[category] = available.Sub(b.NDISCoveredAmount)
	newBreakdown, err := json.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("encode category breakdown: %w", err)
	}
	updateWallet := `UPDATE wallets SET total_balance = $1, category_breakdown = $2, updated_on = $3 WHERE id = $4`
	if _, err := tx.ExecContext(ctx, updateWallet, totalBalance.Sub(b.NDISCoveredAmount), newBreakdown, now, walletID); err != nil {
		return nil, fmt.Errorf("debit wallet: %w", err)
	}

	claim := &domain.Claim{
		Reference: uuid.NewString(),
		UserID:    b.UserID,
		BookingID: b.ID,
		Amount:    b.NDISCoveredAmount,
		Category:  category,
		Status:    domain.ClaimStatusPending,
		ExpiresOn: now.Add(domain.ClaimExpiryPeriod),
		CreatedOn: now,
	}
	insertClaim := `INSERT INTO claims (reference, user_id, booking_id, amount, category, status, expires_on, created_on)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, insertClaim,
		claim.Reference, claim.UserID, claim.BookingID, claim.Amount, claim.Category, claim.Status, claim.ExpiresOn, claim.CreatedOn,
	).Scan(&claim.ID)
	if err != nil {
		return nil, fmt.Errorf("insert claim: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return claim, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT id, user_id, listing_id, scheduled_at, total_price, ndis_covered_amount, gap_payment, notes, status, created_on, updated_on FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.ListingID, &b.ScheduledAt, &b.TotalPrice, &b.NDISCoveredAmount, &b.GapPayment, &b.Notes, &b.Status, &b.CreatedOn, &b.UpdatedOn,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, user_id, listing_id, scheduled_at, total_price, ndis_covered_amount, gap_payment, notes, status, created_on, updated_on
	          FROM bookings WHERE user_id = $1`
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

	query += fmt.Sprintf(" ORDER BY scheduled_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ListingID, &b.ScheduledAt, &b.TotalPrice, &b.NDISCoveredAmount, &b.GapPayment, &b.Notes, &b.Status, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}

func (r *bookingRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT id, user_id, listing_id, scheduled_at, total_price, ndis_covered_amount, gap_payment, notes, status, created_on, updated_on
	          FROM bookings WHERE status = $1 AND scheduled_at >= $2 AND scheduled_at < $3 ORDER BY scheduled_at`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusPending, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ListingID, &b.ScheduledAt, &b.TotalPrice, &b.NDISCoveredAmount, &b.GapPayment, &b.Notes, &b.Status, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
