// Package retention implements the age-window pruning policy applied to the
// time-bounded collections on read.
package retention

import "time"

// Windows applied to the time-bounded collections.
const (
	// CrashBetWindow is how long crash bets stay visible after placement.
	CrashBetWindow = time.Hour
	// DiceGameWindow is how long dice outcomes count toward stats.
	DiceGameWindow = time.Hour
	// PaymentWindow is the freshness window for payment claims and
	// confirmed-payment polling.
	PaymentWindow = 10 * time.Minute
)

// PruneByAge filters records whose timestamp falls outside the window ending
// at now. Order is preserved. A record with timestamp 0 (absent) is always
// stale. The dropped count tells the caller whether a write-back is needed:
// if nothing was dropped the returned slice is the input slice unchanged and
// no persistence should occur.
func PruneByAge[T any](records []T, now int64, window time.Duration, timestamp func(T) int64) ([]T, int) {
	cutoff := now - window.Milliseconds()

	dropped := 0
	for _, record := range records {
		if timestamp(record) <= cutoff {
			dropped++
		}
	}
	if dropped == 0 {
		return records, 0
	}

	keep := make([]T, 0, len(records)-dropped)
	for _, record := range records {
		if timestamp(record) > cutoff {
			keep = append(keep, record)
		}
	}
	return keep, dropped
}
