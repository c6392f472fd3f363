package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/spookymotion/signup-api/internal/domain/entity"
	"github.com/spookymotion/signup-api/internal/domain/notification"
	repo "github.com/spookymotion/signup-api/internal/domain/repository"
)

// PasswordHasher computes a salted one-way hash of a plaintext password.
// Hashing is deliberately slow; the work factor is tuned where the concrete
// hasher is constructed, not here.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// RegistrationService orchestrates new sign-ups: email validation, uniqueness
// check, credential hashing, code generation, persistence and notification.
type RegistrationService struct {
	Repo   repo.UserRepository
	Sender notification.Sender
	Hasher PasswordHasher
	Logger *logrus.Logger
	clock  Clock
}

func NewRegistrationService(r repo.UserRepository, sender notification.Sender, hasher PasswordHasher, logger *logrus.Logger, clock Clock) *RegistrationService {
	if clock == nil {
		clock = realClock{}
	}
	return &RegistrationService{Repo: r, Sender: sender, Hasher: hasher, Logger: logger, clock: clock}
}

// Register creates a pending user for emailRaw and mails it the activation
// code. The email is validated before any lookup happens. The existence check
// and the save are not atomic, so two concurrent registrations can both pass
// the check; the repository's uniqueness constraint rejects the loser and
// that rejection already carries entity.ErrEmailAlreadyExists.
//
// When the notification fails the persisted user is NOT rolled back: the
// account stays pending with a code the owner never saw. There is no resend
// path, so such an account stays unreachable by normal activation; the
// delivery error is surfaced so the caller knows.
func (s *RegistrationService) Register(ctx context.Context, emailRaw, plainPassword string) (*entity.User, error) {
	email, err := entity.NewEmail(emailRaw)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByEmail(ctx, email)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("lookup by email: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrEmailAlreadyExists
	}

	hash, err := s.Hasher.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	code, err := entity.GenerateActivationCode(now)
	if err != nil {
		return nil, err
	}

	u := entity.NewUser(email, hash, code, now)
	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}

	if err := s.Sender.SendActivationCode(ctx, email, code.Value()); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID()).Warn("activation email not delivered; account left pending")
		}
		return nil, err
	}

	return u, nil
}
