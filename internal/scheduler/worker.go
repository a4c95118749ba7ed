package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/auth"
	"github.com/AmrAnter44/sys-body-sub004/internal/email"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/service"
	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Worker consumes reminder tasks and delivers reminder emails.
type Worker struct {
	server    *asynq.Server
	queue     string
	followups *service.Service
	staff     *auth.Service
	sender    email.Sender
	log       *logger.Logger
}

// NewWorker builds the task server and its handler dependencies.
func NewWorker(cfg config.SchedulerConfig, followups *service.Service, staff *auth.Service, sender email.Sender, log *logger.Logger) (*Worker, error) {
	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		},
		asynq.Config{
			Concurrency: cfg.GetAsynqConcurrency(),
			Queues:      map[string]int{cfg.GetAsynqQueueName(): 1},
		},
	)

	return &Worker{
		server:    server,
		queue:     cfg.GetAsynqQueueName(),
		followups: followups,
		staff:     staff,
		sender:    sender,
		log:       log,
	}, nil
}

// Run blocks processing tasks until Shutdown is called.
func (w *Worker) Run() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskFollowUpReminder, w.handleFollowUpReminder)
	return w.server.Run(mux)
}

// Shutdown stops the task server gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

// handleFollowUpReminder resolves the interaction behind the task and mails
// the assigned salesperson. Interactions deleted or reassigned since the
// task was scheduled are dropped without error so asynq does not retry.
func (w *Worker) handleFollowUpReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseFollowUpReminderPayload(task)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	interaction, err := w.followups.GetInteraction(ctx, payload.InteractionID)
	if apperr.IsKind(err, apperr.KindNotFound) {
		w.log.Info("reminder dropped, interaction deleted", "interactionId", payload.InteractionID.String())
		return nil
	}
	if err != nil {
		return err
	}

	if interaction.SalesName == "" || interaction.NextFollowUpDate == nil {
		w.log.Info("reminder dropped, nothing to remind", "interactionId", payload.InteractionID.String())
		return nil
	}

	user, err := w.staff.ResolveEmail(ctx, interaction.SalesName)
	if apperr.IsKind(err, apperr.KindNotFound) {
		w.log.Warn("reminder dropped, no staff account for sales name",
			"salesName", interaction.SalesName,
			"interactionId", payload.InteractionID.String(),
		)
		return nil
	}
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return w.sender.SendFollowUpReminder(sendCtx, email.Reminder{
		To:        user.Email,
		SalesName: interaction.SalesName,
		LeadPhone: interaction.LeadPhone,
		Notes:     interaction.Notes,
		DueDate:   *interaction.NextFollowUpDate,
	})
}
