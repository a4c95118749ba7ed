package members

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"

	"github.com/google/uuid"
)

// Service handles member record operations.
type Service struct {
	repo *Repository
}

// NewService creates a new members service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List returns all member records.
func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}

// Create registers a new member.
func (s *Service) Create(ctx context.Context, name, rawPhone string, isActive bool, expiryDate time.Time) (Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Member{}, apperr.Validation("name is required")
	}
	if phone.Normalize(rawPhone) == "" {
		return Member{}, apperr.Validation("phone is required").WithDetails(map[string]string{"phone": rawPhone})
	}
	if expiryDate.IsZero() {
		return Member{}, apperr.Validation("expiryDate is required")
	}

	return s.repo.Create(ctx, CreateMemberParams{
		Name:       name,
		Phone:      strings.TrimSpace(rawPhone),
		IsActive:   isActive,
		ExpiryDate: expiryDate,
	})
}

// SetActive flips a member's active flag.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (Member, error) {
	record, err := s.repo.SetActive(ctx, id, active)
	if errors.Is(err, ErrNotFound) {
		return Member{}, apperr.NotFound("member not found")
	}
	return record, err
}
