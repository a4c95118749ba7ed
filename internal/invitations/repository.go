// Package invitations manages guest passes issued by existing members. The
// invited guest, not the host, is the sales prospect.
package invitations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Invitation is a guest pass issued by a member.
type Invitation struct {
	ID           uuid.UUID
	GuestName    string
	GuestPhone   string
	HostMemberID uuid.UUID
	CreatedAt    time.Time
}

// Repository provides access to the invitations table.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const invitationColumns = `id, guest_name, guest_phone, host_member_id, created_at`

// List returns all invitations, newest first.
func (r *Repository) List(ctx context.Context) ([]Invitation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Invitation, 0)
	for rows.Next() {
		var record Invitation
		if err := rows.Scan(&record.ID, &record.GuestName, &record.GuestPhone, &record.HostMemberID, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// CreateInvitationParams are the fields of a new invitation row.
type CreateInvitationParams struct {
	GuestName    string
	GuestPhone   string
	HostMemberID uuid.UUID
}

// Create inserts a new invitation.
func (r *Repository) Create(ctx context.Context, params CreateInvitationParams) (Invitation, error) {
	var record Invitation
	err := r.pool.QueryRow(ctx, `
		INSERT INTO invitations (guest_name, guest_phone, host_member_id)
		VALUES ($1, $2, $3)
		RETURNING `+invitationColumns,
		params.GuestName, params.GuestPhone, params.HostMemberID,
	).Scan(&record.ID, &record.GuestName, &record.GuestPhone, &record.HostMemberID, &record.CreatedAt)
	return record, err
}
