package mail

import (
	"context"
	"fmt"

	"github.com/spookymotion/signup-api/internal/domain/entity"
	"github.com/spookymotion/signup-api/internal/domain/notification"
	"github.com/spookymotion/signup-api/pkg/mailer"
)

// SMTPSender delivers activation codes through a plain SMTP relay (MailHog in
// local development).
type SMTPSender struct {
	client *mailer.SMTP
}

func NewSMTPSender(client *mailer.SMTP) *SMTPSender {
	return &SMTPSender{client: client}
}

func (s *SMTPSender) SendActivationCode(_ context.Context, to entity.Email, code string) error {
	if err := s.client.Send(to.String(), mailer.ActivationSubject, mailer.ActivationBody(code)); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrDeliveryFailed, err)
	}
	return nil
}

var _ notification.Sender = (*SMTPSender)(nil)
