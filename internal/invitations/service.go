package invitations

import (
	"context"
	"strings"

	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"

	"github.com/google/uuid"
)

// Service handles invitation operations.
type Service struct {
	repo *Repository
}

// NewService creates a new invitations service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List returns all invitations.
func (s *Service) List(ctx context.Context) ([]Invitation, error) {
	return s.repo.List(ctx)
}

// Create registers a guest invitation issued by a member.
func (s *Service) Create(ctx context.Context, guestName, guestPhone string, hostMemberID uuid.UUID) (Invitation, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return Invitation{}, apperr.Validation("guestName is required")
	}
	if phone.Normalize(guestPhone) == "" {
		return Invitation{}, apperr.Validation("guestPhone is required").WithDetails(map[string]string{"guestPhone": guestPhone})
	}
	if hostMemberID == uuid.Nil {
		return Invitation{}, apperr.Validation("hostMemberId is required")
	}

	return s.repo.Create(ctx, CreateInvitationParams{
		GuestName:    guestName,
		GuestPhone:   strings.TrimSpace(guestPhone),
		HostMemberID: hostMemberID,
	})
}
