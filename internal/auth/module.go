package auth

import (
	apphttp "github.com/AmrAnter44/sys-body-sub004/internal/http"
	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module wires the auth bounded context.
type Module struct {
	service *Service
	handler *Handler
}

// NewModule creates the auth module with its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := NewRepository(pool)
	svc := NewService(repo, cfg, log)
	return &Module{
		service: svc,
		handler: NewHandler(svc, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "auth" }

// Service exposes the auth service for cross-module wiring.
func (m *Module) Service() *Service { return m.service }

// RegisterRoutes mounts auth routes. Login is public behind the stricter
// auth rate limiter; the rest require a valid token.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/auth")
	public.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterPublicRoutes(public)

	m.handler.RegisterProtectedRoutes(ctx.Protected.Group("/auth"))
}
