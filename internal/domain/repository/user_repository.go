package repository

import (
	"context"

	"github.com/spookymotion/signup-api/internal/domain/entity"
)

// UserRepository is the persistence capability for the User aggregate.
//
// Save has upsert semantics keyed by email. When an insert collides with a
// different record holding the same email the implementation must return
// entity.ErrEmailAlreadyExists; the pre-check in the registration flow and
// the save are not atomic, so the storage constraint is what actually
// guarantees uniqueness. Lookups return entity.ErrUserNotFound on absence.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
