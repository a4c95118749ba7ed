// Package repository provides pgx-backed persistence for follow-up
// interactions. Interactions are append-only rows keyed by their own id;
// there are no multi-row transactions here.
package repository

import (
	"context"
	"errors"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when an interaction id does not exist.
var ErrNotFound = errors.New("interaction not found")

// Repository provides access to the follow_up_interactions table.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a repository backed by the given connection pool.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const interactionColumns = `id, lead_id, lead_phone, notes, contacted, result, next_follow_up_date, sales_name, created_at`

// Create appends a new interaction row and returns it.
func (r *Repository) Create(ctx context.Context, interaction domain.FollowUpInteraction) (domain.FollowUpInteraction, error) {
	query := `
		INSERT INTO follow_up_interactions (lead_id, lead_phone, notes, contacted, result, next_follow_up_date, sales_name)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''))
		RETURNING ` + interactionColumns

	row := r.pool.QueryRow(ctx, query,
		interaction.LeadID,
		interaction.LeadPhone,
		interaction.Notes,
		interaction.Contacted,
		string(interaction.Result),
		interaction.NextFollowUpDate,
		interaction.SalesName,
	)
	return scanInteraction(row)
}

// List returns all interactions, oldest first.
func (r *Repository) List(ctx context.Context) ([]domain.FollowUpInteraction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+interactionColumns+`
		FROM follow_up_interactions
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := make([]domain.FollowUpInteraction, 0)
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return interactions, nil
}

// GetByID returns a single interaction.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domain.FollowUpInteraction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+interactionColumns+`
		FROM follow_up_interactions
		WHERE id = $1
	`, id)

	interaction, err := scanInteraction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.FollowUpInteraction{}, ErrNotFound
	}
	return interaction, err
}

// Delete removes an interaction by id. Returns ErrNotFound when no row matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM follow_up_interactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInteraction(row rowScanner) (domain.FollowUpInteraction, error) {
	var (
		interaction domain.FollowUpInteraction
		result      *string
		salesName   *string
	)

	err := row.Scan(
		&interaction.ID,
		&interaction.LeadID,
		&interaction.LeadPhone,
		&interaction.Notes,
		&interaction.Contacted,
		&result,
		&interaction.NextFollowUpDate,
		&salesName,
		&interaction.CreatedAt,
	)
	if err != nil {
		return domain.FollowUpInteraction{}, err
	}

	if result != nil {
		interaction.Result = domain.Result(*result)
	}
	if salesName != nil {
		interaction.SalesName = *salesName
	}
	return interaction, nil
}
