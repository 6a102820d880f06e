package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aymerick/raymond"
	"github.com/mailgun/mailgun-go/v4"

	"github.com/Thegreatvegan/Qura/internal/config"
	"github.com/Thegreatvegan/Qura/pkg/logger"
)

// Notifier tells the team about an accepted submission.
type Notifier interface {
	Notify(ctx context.Context, s Submission, reference string) error
}

var (
	subjectTemplate = raymond.MustParse(`New enquiry from {{{name}}} ({{{company}}})`)

	bodyTemplate = raymond.MustParse(`A new enquiry arrived through the website.

Name:         {{{name}}}
Email:        {{{email}}}
Organization: {{{company}}}
Reference:    {{reference}}

{{#if message}}{{{message}}}{{else}}(no message){{/if}}
`)
)

// Notification is a rendered team notification.
type Notification struct {
	Subject string
	Text    string
}

// RenderNotification fills the notification templates for s.
func RenderNotification(s Submission, reference string) (Notification, error) {
	ctx := map[string]any{
		"name":      s.Name,
		"email":     s.Email,
		"company":   s.Company,
		"message":   s.Message,
		"reference": reference,
	}

	subject, err := subjectTemplate.Exec(ctx)
	if err != nil {
		return Notification{}, fmt.Errorf("render notification subject: %w", err)
	}
	text, err := bodyTemplate.Exec(ctx)
	if err != nil {
		return Notification{}, fmt.Errorf("render notification body: %w", err)
	}
	return Notification{Subject: subject, Text: text}, nil
}

// MailgunNotifier emails notifications through Mailgun.
type MailgunNotifier struct {
	cfg    config.NotifyConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgunNotifier returns nil when Mailgun is not configured.
func NewMailgunNotifier(cfg config.NotifyConfig, log *slog.Logger) *MailgunNotifier {
	if !cfg.IsConfigured() {
		return nil
	}
	return &MailgunNotifier{
		cfg:    cfg,
		log:    log.With(logger.Scope("contact.mailgun")),
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}
}

func (n *MailgunNotifier) Notify(ctx context.Context, s Submission, reference string) error {
	note, err := RenderNotification(s, reference)
	if err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", n.cfg.FromName, n.cfg.FromEmail)
	message := n.client.NewMessage(from, note.Subject, note.Text, n.cfg.ToEmail)
	message.AddHeader("Reply-To", s.Email)

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, messageID, err := n.client.Send(sendCtx, message)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	n.log.Info("notification sent",
		slog.String("reference", reference),
		slog.String("message_id", messageID))
	return nil
}

// noopNotifier only logs, for environments without Mailgun.
type noopNotifier struct {
	log *slog.Logger
}

func (n noopNotifier) Notify(_ context.Context, s Submission, reference string) error {
	n.log.Debug("notification skipped (mailgun not configured)",
		slog.String("reference", reference),
		slog.String("company", s.Company))
	return nil
}

// NewNotifier picks Mailgun when configured and a logging no-op otherwise.
func NewNotifier(cfg *config.Config, log *slog.Logger) Notifier {
	if mg := NewMailgunNotifier(cfg.Notify, log); mg != nil {
		log.Info("using Mailgun notifier",
			slog.String("domain", cfg.Notify.MailgunDomain),
			slog.String("to", cfg.Notify.ToEmail))
		return mg
	}
	return noopNotifier{log: log.With(logger.Scope("contact.notify"))}
}
