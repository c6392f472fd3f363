package application

import (
	"context"
	"errors"

	"github.com/spookymotion/signup-api/internal/domain/entity"
	repo "github.com/spookymotion/signup-api/internal/domain/repository"
)

// ActivationService orchestrates the pending-to-active transition.
type ActivationService struct {
	Repo  repo.UserRepository
	clock Clock
}

func NewActivationService(r repo.UserRepository, clock Clock) *ActivationService {
	if clock == nil {
		clock = realClock{}
	}
	return &ActivationService{Repo: r, clock: clock}
}

// Activate looks up the user by identity, delegates the transition to the
// aggregate and persists the result. Failures from User.Activate propagate
// unchanged; nothing is written unless the transition succeeded.
func (s *ActivationService) Activate(ctx context.Context, id, providedCode string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	if u == nil {
		return nil, entity.ErrUserNotFound
	}

	if err := u.Activate(providedCode, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, entity.ErrUserNotFound)
}
