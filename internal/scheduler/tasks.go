// Package scheduler queues and processes follow-up reminder jobs. When a
// salesperson logs an interaction with a next follow-up date, a reminder
// task is scheduled for that date and delivered by the worker binary.
package scheduler

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskFollowUpReminder is the task type for follow-up due reminders.
const TaskFollowUpReminder = "followups:reminder"

// FollowUpReminderPayload identifies the interaction the reminder is for.
type FollowUpReminderPayload struct {
	InteractionID uuid.UUID `json:"interactionId"`
}

// NewFollowUpReminderTask builds a reminder task for the given interaction.
func NewFollowUpReminderTask(interactionID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(FollowUpReminderPayload{InteractionID: interactionID})
	if err != nil {
		return nil, fmt.Errorf("marshal reminder payload: %w", err)
	}
	return asynq.NewTask(TaskFollowUpReminder, payload), nil
}

// ParseFollowUpReminderPayload decodes a reminder task payload.
func ParseFollowUpReminderPayload(task *asynq.Task) (FollowUpReminderPayload, error) {
	var payload FollowUpReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return FollowUpReminderPayload{}, fmt.Errorf("unmarshal reminder payload: %w", err)
	}
	return payload, nil
}
