package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	now := time.Now()
	query := `INSERT INTO listings (provider_id, title, description, category, hourly_rate, location, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		l.ProviderID, l.Title, l.Description, l.Category, l.HourlyRate, l.Location, l.Active, now, now,
	).Scan(&l.ID)
}

// GetByID fetches one listing joined with the provider's display name, the
// shape the detail screen renders.
func (r *listingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	l := &domain.Listing{}
	query := `SELECT l.id, l.provider_id, p.business_name, l.title, l.description, l.category, l.hourly_rate, l.location, l.active, l.created_on, l.updated_on
	          FROM listings l JOIN providers p ON p.id = l.provider_id WHERE l.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.ProviderID, &l.ProviderName, &l.Title, &l.Description, &l.Category, &l.HourlyRate, &l.Location, &l.Active, &l.CreatedOn, &l.UpdatedOn,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepository) List(ctx context.Context, category string, maxRate decimal.Decimal, page, pageSize int32) ([]domain.Listing, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT l.id, l.provider_id, p.business_name, l.title, l.description, l.category, l.hourly_rate, l.location, l.active, l.created_on, l.updated_on
	          FROM listings l JOIN providers p ON p.id = l.provider_id WHERE l.active = true`
	args := []interface{}{}
	argIdx := 1
	if category != "" {
		query += fmt.Sprintf(" AND l.category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if maxRate.IsPositive() {
		query += fmt.Sprintf(" AND l.hourly_rate <= $%d", argIdx)
		args = append(args, maxRate)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY l.created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.ProviderID, &l.ProviderName, &l.Title, &l.Description, &l.Category, &l.HourlyRate, &l.Location, &l.Active, &l.CreatedOn, &l.UpdatedOn); err != nil {
			return nil, 0, err
		}
		listings = append(listings, l)
	}
	return listings, count, rows.Err()
}

func (r *listingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings SET title=$1, description=$2, category=$3, hourly_rate=$4, location=$5, active=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, l.Title, l.Description, l.Category, l.HourlyRate, l.Location, l.Active, time.Now(), l.ID)
	return err
}
