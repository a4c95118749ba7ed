// Package members manages gym membership authority records. The follow-ups
// engine reads these as a snapshot to decide conversion and to synthesize
// expired/expiring leads; this package owns the rows themselves.
package members

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a member id does not exist.
var ErrNotFound = errors.New("member not found")

// Member is a gym membership record.
type Member struct {
	ID         uuid.UUID
	Name       string
	Phone      string
	IsActive   bool
	ExpiryDate time.Time
	CreatedAt  time.Time
}

// Repository provides access to the members table.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const memberColumns = `id, name, phone, is_active, expiry_date, created_at`

// List returns all member records, newest first.
func (r *Repository) List(ctx context.Context) ([]Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM members
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Member, 0)
	for rows.Next() {
		var record Member
		if err := rows.Scan(&record.ID, &record.Name, &record.Phone, &record.IsActive, &record.ExpiryDate, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// CreateMemberParams are the fields of a new member row.
type CreateMemberParams struct {
	Name       string
	Phone      string
	IsActive   bool
	ExpiryDate time.Time
}

// Create inserts a new member record.
func (r *Repository) Create(ctx context.Context, params CreateMemberParams) (Member, error) {
	var record Member
	err := r.pool.QueryRow(ctx, `
		INSERT INTO members (name, phone, is_active, expiry_date)
		VALUES ($1, $2, $3, $4)
		RETURNING `+memberColumns,
		params.Name, params.Phone, params.IsActive, params.ExpiryDate,
	).Scan(&record.ID, &record.Name, &record.Phone, &record.IsActive, &record.ExpiryDate, &record.CreatedAt)
	return record, err
}

// SetActive flips a member's active flag, e.g. after a renewal or lapse.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) (Member, error) {
	var record Member
	err := r.pool.QueryRow(ctx, `
		UPDATE members
		SET is_active = $2
		WHERE id = $1
		RETURNING `+memberColumns,
		id, active,
	).Scan(&record.ID, &record.Name, &record.Phone, &record.IsActive, &record.ExpiryDate, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	return record, err
}
