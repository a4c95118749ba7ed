// Package email delivers follow-up reminder messages to sales staff.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"

	"github.com/wneessen/go-mail"
)

// Reminder is the content of one follow-up reminder message.
type Reminder struct {
	To        string
	SalesName string
	LeadPhone string
	Notes     string
	DueDate   time.Time
}

// Sender delivers reminder emails.
type Sender interface {
	SendFollowUpReminder(ctx context.Context, reminder Reminder) error
}

// SMTPSender sends reminders over SMTP.
type SMTPSender struct {
	cfg config.EmailConfig
	log *logger.Logger
}

// NewSMTPSender creates an SMTP-backed sender.
func NewSMTPSender(cfg config.EmailConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log}
}

func (s *SMTPSender) SendFollowUpReminder(ctx context.Context, reminder Reminder) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.cfg.GetEmailFromName(), s.cfg.GetEmailFromAddress()); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(reminder.To); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}

	msg.Subject(fmt.Sprintf("Follow-up due today: %s", reminder.LeadPhone))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nYou have a follow-up due on %s for lead %s.\n\nLast note: %s\n",
		reminder.SalesName,
		reminder.DueDate.Format("2 Jan 2006"),
		reminder.LeadPhone,
		reminder.Notes,
	))

	client, err := mail.NewClient(s.cfg.GetSMTPHost(),
		mail.WithPort(s.cfg.GetSMTPPort()),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.GetSMTPUsername()),
		mail.WithPassword(s.cfg.GetSMTPPassword()),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	s.log.Info("reminder email sent", "to", reminder.To, "leadPhone", reminder.LeadPhone)
	return nil
}

// NoopSender is used when email delivery is disabled. It logs instead of
// sending so staging environments keep a trace.
type NoopSender struct {
	log *logger.Logger
}

// NewNoopSender creates a sender that only logs.
func NewNoopSender(log *logger.Logger) *NoopSender {
	return &NoopSender{log: log}
}

func (s *NoopSender) SendFollowUpReminder(_ context.Context, reminder Reminder) error {
	s.log.Info("email disabled, skipping reminder", "to", reminder.To, "leadPhone", reminder.LeadPhone)
	return nil
}
