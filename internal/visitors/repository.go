// Package visitors manages walk-in and campaign prospect records captured at
// the front desk. Every visitor row is a potential lead for follow-up.
package visitors

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Visitor is a prospect record captured before any membership exists.
type Visitor struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	SourceTag string
	CreatedAt time.Time
}

// Repository provides access to the visitors table.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const visitorColumns = `id, name, phone, source_tag, created_at`

// List returns all visitor records, newest first.
func (r *Repository) List(ctx context.Context) ([]Visitor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+visitorColumns+`
		FROM visitors
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Visitor, 0)
	for rows.Next() {
		var record Visitor
		if err := rows.Scan(&record.ID, &record.Name, &record.Phone, &record.SourceTag, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// CreateVisitorParams are the fields of a new visitor row.
type CreateVisitorParams struct {
	Name      string
	Phone     string
	SourceTag string
}

// Create inserts a new visitor record.
func (r *Repository) Create(ctx context.Context, params CreateVisitorParams) (Visitor, error) {
	var record Visitor
	err := r.pool.QueryRow(ctx, `
		INSERT INTO visitors (name, phone, source_tag)
		VALUES ($1, $2, $3)
		RETURNING `+visitorColumns,
		params.Name, params.Phone, params.SourceTag,
	).Scan(&record.ID, &record.Name, &record.Phone, &record.SourceTag, &record.CreatedAt)
	return record, err
}
