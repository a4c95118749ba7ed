package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/adapters"
	"github.com/AmrAnter44/sys-body-sub004/internal/auth"
	"github.com/AmrAnter44/sys-body-sub004/internal/dayuse"
	"github.com/AmrAnter44/sys-body-sub004/internal/email"
	"github.com/AmrAnter44/sys-body-sub004/internal/events"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/service"
	"github.com/AmrAnter44/sys-body-sub004/internal/invitations"
	"github.com/AmrAnter44/sys-body-sub004/internal/members"
	"github.com/AmrAnter44/sys-body-sub004/internal/scheduler"
	"github.com/AmrAnter44/sys-body-sub004/internal/visitors"
	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/db"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	if cfg.GetRedisURL() == "" {
		panic("REDIS_URL is required for the scheduler worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// Worker-side wiring: the reminder handler re-reads the interaction
	// through the same consolidation service the API uses, so a deleted
	// interaction silently drops its reminder.
	authModule := auth.NewModule(pool, cfg, val, log)
	membersModule := members.NewModule(pool, val)
	visitorsModule := visitors.NewModule(pool, val)
	dayUseModule := dayuse.NewModule(pool, val)
	invitationsModule := invitations.NewModule(pool, val)

	sources := service.Sources{
		Visitors:    adapters.NewVisitorSource(visitorsModule.Service()),
		Members:     adapters.NewMemberSource(membersModule.Service()),
		DayUse:      adapters.NewDayUseSource(dayUseModule.Service()),
		Invitations: adapters.NewInvitationSource(invitationsModule.Service()),
	}
	followUpsModule := followups.NewModule(pool, sources, nil, eventBus, val, cfg, log)

	var sender email.Sender
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg, log)
	} else {
		sender = email.NewNoopSender(log)
	}

	worker, err := scheduler.NewWorker(cfg, followUpsModule.Service(), authModule.Service(), sender, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	go func() {
		<-ctx.Done()
		log.Info("shutdown signal received, stopping worker")
		worker.Shutdown()
	}()

	if err := worker.Run(); err != nil {
		log.Error("worker stopped with error", "error", err)
		panic("worker stopped with error: " + err.Error())
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
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
