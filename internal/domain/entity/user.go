package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for account sign-up. A user starts pending with
// exactly one activation code and becomes active at most once; after that the
// code is gone for good and the transition cannot be undone.
//
// Fields are unexported so the only way to change state is Activate. Email
// uniqueness across users is a cross-aggregate invariant enforced by the
// repository, not here.
type User struct {
	id             string
	email          Email
	passwordHash   string
	isActive       bool
	activationCode *ActivationCode
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser constructs a pending user with a fresh identity. The password hash
// must already be computed; plaintext never reaches the aggregate.
func NewUser(email Email, passwordHash string, code ActivationCode, now time.Time) *User {
	return &User{
		id:             uuid.NewString(),
		email:          email,
		passwordHash:   passwordHash,
		isActive:       false,
		activationCode: &code,
		createdAt:      now,
		updatedAt:      now,
	}
}

// RehydrateUser restores a user from storage without touching invariant
// checks that belong to construction time. Persistence adapters only.
func RehydrateUser(id string, email Email, passwordHash string, isActive bool, code *ActivationCode, createdAt, updatedAt time.Time) *User {
	return &User{
		id:             id,
		email:          email,
		passwordHash:   passwordHash,
		isActive:       isActive,
		activationCode: code,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Activate moves the user from pending to active when providedCode matches
// the stored code and the code is still valid as of now. The checks run in a
// fixed order so the caller can tell which condition failed:
// already active, missing code, mismatched code, expired code.
// On success the code is cleared; persisting the change is the caller's job.
func (u *User) Activate(providedCode string, now time.Time) error {
	if u.isActive {
		return ErrUserAlreadyActive
	}
	if u.activationCode == nil {
		return ErrMissingActivationCode
	}
	if u.activationCode.Value() != providedCode {
		return ErrInvalidActivationCode
	}
	if u.activationCode.HasExpired(now) {
		return ErrExpiredActivationCode
	}
	u.isActive = true
	u.activationCode = nil
	u.updatedAt = now
	return nil
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// ActivationCode returns the pending code, or nil once the user is active.
func (u *User) ActivationCode() *ActivationCode {
	return u.activationCode
}
