package entity

import "errors"

// Domain error taxonomy. Every failure the core can produce is one of these
// sentinels; callers branch with errors.Is and adapters own any translation
// to transport codes.
var (
	// ErrInvalidEmail is returned when an email string does not have a
	// local@domain.tld shape or exceeds 254 characters.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken, whether caught by the pre-check or by the storage
	// uniqueness constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrUserNotFound is returned when no user matches the given identity
	// or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyActive is returned when activating an account that has
	// already been activated.
	ErrUserAlreadyActive = errors.New("user already active")
	// ErrInvalidActivationCode is returned when the provided code does not
	// match the stored one.
	ErrInvalidActivationCode = errors.New("invalid activation code")
	// ErrExpiredActivationCode is returned when the stored code is past its
	// TTL. No renewal is provided.
	ErrExpiredActivationCode = errors.New("activation code expired")
	// ErrMissingActivationCode is returned when a pending user carries no
	// activation code. This cannot happen under correct construction and is
	// checked defensively.
	ErrMissingActivationCode = errors.New("no activation code set")
	// ErrDeliveryFailed is returned when the activation email could not be
	// handed off to a mail transport.
	ErrDeliveryFailed = errors.New("email delivery failed")
)
