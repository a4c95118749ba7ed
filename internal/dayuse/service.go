package dayuse

import (
	"context"
	"strings"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"
)

// Service handles day-use record operations.
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService creates a new day-use service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns all day-use records.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Create registers a day-use visit. A zero visit date defaults to today.
func (s *Service) Create(ctx context.Context, name, rawPhone string, visitDate time.Time) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, apperr.Validation("name is required")
	}
	if phone.Normalize(rawPhone) == "" {
		return Record{}, apperr.Validation("phone is required").WithDetails(map[string]string{"phone": rawPhone})
	}
	if visitDate.IsZero() {
		visitDate = s.now()
	}

	return s.repo.Create(ctx, CreateRecordParams{
		Name:      name,
		Phone:     strings.TrimSpace(rawPhone),
		VisitDate: visitDate,
	})
}
