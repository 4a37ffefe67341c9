// Package retry polls a readiness condition with backoff.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrGaveUp is returned when the attempt budget runs out before the
// condition holds.
var ErrGaveUp = errors.New("condition not met before attempts ran out")

// Config holds the polling configuration options.
type Config struct {
	// MaxAttempts bounds the number of checks. Zero or less polls until the
	// context ends.
	MaxAttempts int

	// InitialDelay is the delay between the first and second check.
	InitialDelay time.Duration

	// MaxDelay caps the delay between checks.
	MaxDelay time.Duration

	// Multiplier grows the delay after each failed check. Values of 1 or less
	// poll at a fixed interval.
	Multiplier float64

	// JitterFactor is the factor for random jitter (0.0 to 1.0).
	JitterFactor float64
}

// ReadinessConfig checks every 200ms with no limit, the cadence a UI host
// needs to notice that its display has been attached.
var ReadinessConfig = Config{
	MaxAttempts:  0,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     200 * time.Millisecond,
	Multiplier:   1,
	JitterFactor: 0,
}

// Poll calls check until it reports true, returns an error, the attempts run
// out, or ctx is done. The first check happens immediately.
func Poll(ctx context.Context, check func() (bool, error), cfg Config) error {
	delay := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := check()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		if cfg.MaxAttempts > 0 && attempt >= cfg.MaxAttempts {
			return ErrGaveUp
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		if cfg.Multiplier > 1 {
			delay = time.Duration(float64(delay) * cfg.Multiplier)
		}
	}
}

// When runs fn once ready reports true. It returns without calling fn when
// ctx ends or the attempts run out first.
func When(ctx context.Context, ready func() bool, fn func(), cfg Config) error {
	err := Poll(ctx, func() (bool, error) {
		return ready(), nil
	}, cfg)
	if err != nil {
		return err
	}
	fn()
	return nil
}

// sleepTime computes the wait with jitter and max cap.
func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	d := delay + jitter

	if maxDelay > 0 && d > maxDelay {
		d = maxDelay
	}
	return d
}
