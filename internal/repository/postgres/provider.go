package postgres

import (
	"context"
	"database/sql"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"
)

type providerRepository struct {
	db *sql.DB
}

func NewProviderRepository(db *sql.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) Create(ctx context.Context, p *domain.Provider) error {
	query := `INSERT INTO providers (business_name, abn, contact_email, verified, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.BusinessName, p.ABN, p.ContactEmail, p.Verified, time.Now()).Scan(&p.ID)
}

func (r *providerRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	p := &domain.Provider{}
	query := `SELECT id, business_name, abn, contact_email, verified, created_on FROM providers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.BusinessName, &p.ABN, &p.ContactEmail, &p.Verified, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}
