package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// CodeTTL is how long an activation code stays valid after generation.
const CodeTTL = time.Minute

var codeSpace = big.NewInt(10000)

// ActivationCode is an immutable value object holding a 4-digit code and the
// instant it stops being valid.
type ActivationCode struct {
	value     string
	expiresAt time.Time
}

// GenerateActivationCode draws a uniform random code in 0000-9999 from
// crypto/rand and stamps it with now + CodeTTL. Codes gate account takeover,
// so a predictable generator is not acceptable here.
func GenerateActivationCode(now time.Time) (ActivationCode, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return ActivationCode{}, fmt.Errorf("generate activation code: %w", err)
	}
	return ActivationCode{
		value:     fmt.Sprintf("%04d", n.Int64()),
		expiresAt: now.Add(CodeTTL),
	}, nil
}

// RehydrateActivationCode rebuilds a stored code without generating a new
// value. Used by persistence adapters only.
func RehydrateActivationCode(value string, expiresAt time.Time) ActivationCode {
	return ActivationCode{value: value, expiresAt: expiresAt}
}

// Value returns the 4-digit code.
func (c ActivationCode) Value() string {
	return c.value
}

// ExpiresAt returns the instant the code stops being valid.
func (c ActivationCode) ExpiresAt() time.Time {
	return c.expiresAt
}

// HasExpired reports whether now is strictly after the expiry instant.
// Expiry is always computed, never cached.
func (c ActivationCode) HasExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}
