package mail

import (
	"context"
	"fmt"

	"github.com/spookymotion/signup-api/internal/domain/entity"
	"github.com/spookymotion/signup-api/internal/domain/notification"
	"github.com/spookymotion/signup-api/pkg/helpers"
	"github.com/spookymotion/signup-api/pkg/mailer"
)

// QueueSender hands the activation mail to RabbitMQ; cmd/email_worker picks
// it up and does the actual transport send. For the registration flow the
// publish IS the handoff, so a publish failure is a delivery failure.
type QueueSender struct {
	pub *helpers.RabbitPublisher
}

func NewQueueSender(pub *helpers.RabbitPublisher) *QueueSender {
	return &QueueSender{pub: pub}
}

func (s *QueueSender) SendActivationCode(ctx context.Context, to entity.Email, code string) error {
	job := mailer.EmailJob{
		To:      to.String(),
		Subject: mailer.ActivationSubject,
		Text:    mailer.ActivationBody(code),
	}
	if err := s.pub.PublishJSON(ctx, job); err != nil {
		return fmt.Errorf("%w: enqueue: %v", entity.ErrDeliveryFailed, err)
	}
	return nil
}

var _ notification.Sender = (*QueueSender)(nil)
