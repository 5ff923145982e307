package time

import (
	"context"
	"time"

	"github.com/tonarcade/casino-backend/internal/domain/port/core"
)

// RealTimeProvider implements TimeProvider using the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// NowUnixMilli returns the current time in unix milliseconds
func (p *RealTimeProvider) NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

// WithTimeout returns a context that is canceled after the given timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
