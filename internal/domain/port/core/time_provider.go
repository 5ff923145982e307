package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain. Every timestamp,
// retention window and timeout flows through this port so tests can pin the
// clock.
type TimeProvider interface {
	// NowUnixMilli returns the current time in unix milliseconds, the unit
	// used by all persisted timestamps
	NowUnixMilli() int64
	// WithTimeout returns a context that is canceled after the given timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
