// Package followups provides the lead consolidation bounded context module.
// This file defines the module that encapsulates all follow-ups setup and
// route registration.
package followups

import (
	"github.com/AmrAnter44/sys-body-sub004/internal/events"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/cache"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/handler"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/repository"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/service"
	apphttp "github.com/AmrAnter44/sys-body-sub004/internal/http"
	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Module is the follow-ups bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repository
}

// NewModule creates and initializes the follow-ups module. redisClient may be
// nil; the leaderboard is then computed on every request.
func NewModule(pool *pgxpool.Pool, sources service.Sources, redisClient *redis.Client, eventBus events.Bus, val *validator.Validator, cfg config.EngineConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)

	var leaderboardCache service.LeaderboardCache
	if redisClient != nil {
		leaderboardCache = cache.NewLeaderboard(redisClient, cfg.GetLeaderboardCacheTTL(), log)
	}

	svc := service.New(sources, repo, leaderboardCache, eventBus, cfg.GetExpiringHorizonDays(), log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "followups"
}

// Service returns the follow-ups service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the interaction repository for worker-side wiring.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts follow-ups routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// All follow-ups routes require authentication
	group := ctx.Protected.Group("/follow-ups")
	m.handler.RegisterRoutes(group)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
