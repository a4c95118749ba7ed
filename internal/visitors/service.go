package visitors

import (
	"context"
	"strings"

	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"
)

// Service handles visitor record operations.
type Service struct {
	repo *Repository
}

// NewService creates a new visitors service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List returns all visitor records.
func (s *Service) List(ctx context.Context) ([]Visitor, error) {
	return s.repo.List(ctx)
}

// Create registers a new visitor prospect.
func (s *Service) Create(ctx context.Context, name, rawPhone, sourceTag string) (Visitor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Visitor{}, apperr.Validation("name is required")
	}
	if phone.Normalize(rawPhone) == "" {
		return Visitor{}, apperr.Validation("phone is required").WithDetails(map[string]string{"phone": rawPhone})
	}

	return s.repo.Create(ctx, CreateVisitorParams{
		Name:      name,
		Phone:     strings.TrimSpace(rawPhone),
		SourceTag: strings.TrimSpace(sourceTag),
	})
}
