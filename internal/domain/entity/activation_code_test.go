package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateActivationCode_Shape(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		c, err := GenerateActivationCode(now)
		require.NoError(t, err)
		require.Len(t, c.Value(), 4)
		for _, r := range c.Value() {
			require.True(t, r >= '0' && r <= '9', "code %q contains non-digit", c.Value())
		}
		require.Equal(t, now.Add(CodeTTL), c.ExpiresAt())
	}
}

func TestActivationCode_HasExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c, err := GenerateActivationCode(now)
	require.NoError(t, err)

	require.False(t, c.HasExpired(now), "fresh code must not be expired")
	require.False(t, c.HasExpired(c.ExpiresAt()), "expiry is strict: not expired at the exact instant")
	require.True(t, c.HasExpired(c.ExpiresAt().Add(time.Second)))
}

func TestRehydrateActivationCode(t *testing.T) {
	exp := time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC)
	c := RehydrateActivationCode("0042", exp)
	require.Equal(t, "0042", c.Value())
	require.Equal(t, exp, c.ExpiresAt())
}
