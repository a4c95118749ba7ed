// Package dayuse manages single-visit pass records. Day-use guests paid for
// one session and are prime candidates for a membership pitch.
package dayuse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is a single day-use visit.
type Record struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	VisitDate time.Time
	CreatedAt time.Time
}

// Repository provides access to the day_use_records table.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const recordColumns = `id, name, phone, visit_date, created_at`

// List returns all day-use records, most recent visit first.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+recordColumns+`
		FROM day_use_records
		ORDER BY visit_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.Name, &record.Phone, &record.VisitDate, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// CreateRecordParams are the fields of a new day-use row.
type CreateRecordParams struct {
	Name      string
	Phone     string
	VisitDate time.Time
}

// Create inserts a new day-use record.
func (r *Repository) Create(ctx context.Context, params CreateRecordParams) (Record, error) {
	var record Record
	err := r.pool.QueryRow(ctx, `
		INSERT INTO day_use_records (name, phone, visit_date)
		VALUES ($1, $2, $3)
		RETURNING `+recordColumns,
		params.Name, params.Phone, params.VisitDate,
	).Scan(&record.ID, &record.Name, &record.Phone, &record.VisitDate, &record.CreatedAt)
	return record, err
}
