package dayuse

import (
	apphttp "github.com/AmrAnter44/sys-body-sub004/internal/http"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module wires the day-use bounded context.
type Module struct {
	service *Service
	handler *Handler
}

// NewModule creates the day-use module with its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := NewRepository(pool)
	svc := NewService(repo)
	return &Module{
		service: svc,
		handler: NewHandler(svc, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "dayuse" }

// Service exposes the day-use service for cross-module wiring.
func (m *Module) Service() *Service { return m.service }

// RegisterRoutes mounts day-use routes under the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/day-use"))
}
