// Package retry wraps avast/retry-go with functional options. It backs the
// transaction status polling done after a submit. Raw HTTP retries are
// handled by the transport.
//
// Basic usage:
//
//	r := retry.New(retry.WithAttempts(10))
//	err := r.Execute(ctx, func() error {
//	    status, err := fetch(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    if status.Rejected() {
//	        return retry.Unrecoverable(ErrRejected)
//	    }
//	    ...
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, returns an unrecoverable
// error, runs out of attempts, or ctx is done.
type Retry interface {
	// Execute runs operation with the configured retry policy. The operation
	// must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, including the first
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // cap for the exponential backoff
	lastErrOnly bool          // whether to return only the last error
	fixedDelay  bool          // use a constant delay instead of exponential backoff
}

// Option configures the retry mechanism.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry with the given options. Defaults:
//
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - backoff:     exponential
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixedDelay {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// Unrecoverable marks err so Execute stops retrying and returns it at once.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the error of the final attempt is
// returned instead of the combined errors of all attempts. Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithFixedDelay waits exactly the configured delay between attempts, which
// suits polling a ledger whose blocks arrive on a steady cadence.
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixedDelay = true
	}
}
