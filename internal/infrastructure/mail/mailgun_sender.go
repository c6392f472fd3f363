// Package mail provides the notification.Sender adapters: direct Mailgun,
// direct SMTP (MailHog) and queue-backed delivery through RabbitMQ.
package mail

import (
	"context"
	"fmt"

	"github.com/spookymotion/signup-api/internal/domain/entity"
	"github.com/spookymotion/signup-api/internal/domain/notification"
	"github.com/spookymotion/signup-api/pkg/mailer"
)

// MailgunSender delivers activation codes synchronously through Mailgun.
type MailgunSender struct {
	mg *mailer.Mailgun
}

func NewMailgunSender(mg *mailer.Mailgun) *MailgunSender {
	return &MailgunSender{mg: mg}
}

func (s *MailgunSender) SendActivationCode(ctx context.Context, to entity.Email, code string) error {
	err := s.mg.Send(ctx, to.String(), mailer.ActivationSubject, mailer.ActivationBody(code), "")
	if err != nil {
		return fmt.Errorf("%w: mailgun: %v", entity.ErrDeliveryFailed, err)
	}
	return nil
}

var _ notification.Sender = (*MailgunSender)(nil)
