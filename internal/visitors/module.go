package visitors

import (
	apphttp "github.com/AmrAnter44/sys-body-sub004/internal/http"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module wires the visitors bounded context.
type Module struct {
	service *Service
	handler *Handler
}

// NewModule creates the visitors module with its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := NewRepository(pool)
	svc := NewService(repo)
	return &Module{
		service: svc,
		handler: NewHandler(svc, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "visitors" }

// Service exposes the visitors service for cross-module wiring.
func (m *Module) Service() *Service { return m.service }

// RegisterRoutes mounts visitor routes under the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/visitors"))
}
