package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/adapters"
	"github.com/AmrAnter44/sys-body-sub004/internal/auth"
	"github.com/AmrAnter44/sys-body-sub004/internal/dayuse"
	"github.com/AmrAnter44/sys-body-sub004/internal/events"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/service"
	apphttp "github.com/AmrAnter44/sys-body-sub004/internal/http"
	"github.com/AmrAnter44/sys-body-sub004/internal/http/router"
	"github.com/AmrAnter44/sys-body-sub004/internal/invitations"
	"github.com/AmrAnter44/sys-body-sub004/internal/members"
	"github.com/AmrAnter44/sys-body-sub004/internal/scheduler"
	"github.com/AmrAnter44/sys-body-sub004/internal/visitors"
	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/db"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	redisClient := initRedis(cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	reminderClient, closeReminders := initReminderClient(cfg, log)
	if closeReminders != nil {
		defer closeReminders()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule := auth.NewModule(pool, cfg, val, log)
	membersModule := members.NewModule(pool, val)
	visitorsModule := visitors.NewModule(pool, val)
	dayUseModule := dayuse.NewModule(pool, val)
	invitationsModule := invitations.NewModule(pool, val)

	// Consolidation reads the four source contexts through anti-corruption
	// adapters; it never touches their tables directly.
	sources := service.Sources{
		Visitors:    adapters.NewVisitorSource(visitorsModule.Service()),
		Members:     adapters.NewMemberSource(membersModule.Service()),
		DayUse:      adapters.NewDayUseSource(dayUseModule.Service()),
		Invitations: adapters.NewInvitationSource(invitationsModule.Service()),
	}

	followUpsModule := followups.NewModule(pool, sources, redisClient, eventBus, val, cfg, log)

	// Schedule a reminder whenever an interaction carries a next follow-up date.
	if reminderClient != nil {
		eventBus.Subscribe(events.FollowUpLogged{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
			logged, ok := event.(events.FollowUpLogged)
			if !ok || logged.NextFollowUpDate == nil {
				return nil
			}
			return reminderClient.ScheduleFollowUpReminder(logged.InteractionID, *logged.NextFollowUpDate)
		}))
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			authModule,
			membersModule,
			visitorsModule,
			dayUseModule,
			invitationsModule,
			followUpsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initRedis(cfg *config.Config, log *logger.Logger) *redis.Client {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; leaderboard cache disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL; leaderboard cache disabled", "error", err)
		return nil
	}
	return redis.NewClient(opts)
}

func initReminderClient(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; follow-up reminders disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg, log)
	if err != nil {
		log.Error("failed to initialize reminder client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
