package postgres

import (
	"context"
	"database/sql"
	"time"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	now := time.Now()
	query := `INSERT INTO users (name, email, phone_number, password_hash, ndis_number, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PhoneNumber, u.PasswordHash, u.NDISNumber, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, phone_number, password_hash, ndis_number, created_on, updated_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.NDISNumber, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, phone_number, password_hash, ndis_number, created_on, updated_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.NDISNumber, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, phone_number=$3, ndis_number=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.PhoneNumber, u.NDISNumber, time.Now(), u.ID)
	return err
}
