package application

import "time"

// Clock provides the current time so code-expiry behavior can be pinned down
// in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}
