// Package auth manages staff accounts and login. Sales staff authenticate
// here; the resulting token carries the sales name the follow-up endpoints
// use for attribution and the "mine" quick filters.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a staff account does not exist.
var ErrNotFound = errors.New("staff user not found")

// StaffUser is a back-office staff account.
type StaffUser struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Repository provides access to the staff_users table.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const staffColumns = `id, name, email, password_hash, created_at`

// GetByEmail looks up a staff account by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (StaffUser, error) {
	var user StaffUser
	err := r.pool.QueryRow(ctx, `
		SELECT `+staffColumns+`
		FROM staff_users
		WHERE lower(email) = lower($1)
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return StaffUser{}, ErrNotFound
	}
	return user, err
}

// GetByName looks up a staff account by sales name. Reminder delivery uses
// this to resolve the email behind a follow-up's salesperson.
func (r *Repository) GetByName(ctx context.Context, name string) (StaffUser, error) {
	var user StaffUser
	err := r.pool.QueryRow(ctx, `
		SELECT `+staffColumns+`
		FROM staff_users
		WHERE lower(name) = lower($1)
	`, name).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return StaffUser{}, ErrNotFound
	}
	return user, err
}

// CreateStaffParams are the fields of a new staff account.
type CreateStaffParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// Create inserts a new staff account.
func (r *Repository) Create(ctx context.Context, params CreateStaffParams) (StaffUser, error) {
	var user StaffUser
	err := r.pool.QueryRow(ctx, `
		INSERT INTO staff_users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING `+staffColumns,
		params.Name, params.Email, params.PasswordHash,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	return user, err
}
