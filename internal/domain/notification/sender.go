package notification

import (
	"context"

	"github.com/spookymotion/signup-api/internal/domain/entity"
)

// Sender is the notification capability: it delivers an activation code to an
// address. Implementations return entity.ErrDeliveryFailed (wrapped) when the
// message cannot be handed off to a transport; the core never retries.
type Sender interface {
	SendActivationCode(ctx context.Context, to entity.Email, code string) error
}
