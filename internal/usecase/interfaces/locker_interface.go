package interfaces

import (
	"context"
	"time"
)

// ILocker hands out short-lived exclusive locks keyed by name.
type ILocker interface {
	// Obtain returns a release func, or ErrLockNotObtained when the key stays
	// held past the retry window.
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}
