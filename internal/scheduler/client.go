package scheduler

import (
	"fmt"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Client enqueues reminder tasks.
type Client struct {
	client *asynq.Client
	queue  string
	log    *logger.Logger
}

// NewClient creates a task client from the scheduler configuration.
func NewClient(cfg config.SchedulerConfig, log *logger.Logger) (*Client, error) {
	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
		queue: cfg.GetAsynqQueueName(),
		log:   log,
	}, nil
}

// ScheduleFollowUpReminder queues a reminder to fire at the follow-up's due
// date. A due date already in the past fires immediately.
func (c *Client) ScheduleFollowUpReminder(interactionID uuid.UUID, dueDate time.Time) error {
	task, err := NewFollowUpReminderTask(interactionID)
	if err != nil {
		return err
	}

	info, err := c.client.Enqueue(task,
		asynq.Queue(c.queue),
		asynq.ProcessAt(dueDate),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}

	c.log.Info("reminder scheduled",
		"taskId", info.ID,
		"interactionId", interactionID.String(),
		"processAt", dueDate,
	)
	return nil
}

// Close releases the underlying redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}
