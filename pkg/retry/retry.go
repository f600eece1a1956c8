package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/tgcore/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// MinWait returns the least time to wait after err before the next
	// attempt, e.g. a server supplied hint. Optional.
	MinWait func(err error) time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

// Do runs operation until it succeeds, returns a backoff.Permanent error, the
// retries are exhausted or ctx is done.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.MaxElapsedTime = 0
	bo.Reset()

	var last error
	op := func() error {
		last = operation()
		return last
	}

	var retryable backoff.BackOff = backoff.WithMaxRetries(bo, cfg.MaxRetries)
	if cfg.MinWait != nil {
		retryable = &floorBackOff{
			BackOff: retryable,
			floor:   func() time.Duration { return cfg.MinWait(last) },
		}
	}
	retryableWithContext := backoff.WithContext(retryable, ctx)

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotify(op, retryableWithContext, notify)
}

// floorBackOff never waits less than floor.
type floorBackOff struct {
	backoff.BackOff
	floor func() time.Duration
}

func (b *floorBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if f := b.floor(); f > next {
		return f
	}
	return next
}
