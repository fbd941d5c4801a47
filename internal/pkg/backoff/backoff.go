package backoff

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"time"
)

// MaxWait caps the exponential part of a backoff.
const MaxWait = 5 * time.Minute

const maxShift = 30

// Exponential returns base * 2^attempt, capped at MaxWait, plus up to 20% random jitter.
func Exponential(attempt int, base time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > maxShift {
		attempt = maxShift
	}
	waitTime := MaxWait
	if base <= MaxWait>>attempt {
		waitTime = base << attempt
	}
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask the sign bit before converting
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked above
	return int64(uval) % n
}
