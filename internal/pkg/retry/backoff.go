package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/piresc/reliefhub/internal/pkg/logger"
)

// Policy describes an exponential backoff. A zero Policy makes a single attempt.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Jitter    bool
}

// DefaultPolicy is used for broker publishes
func DefaultPolicy() Policy {
	return Policy{
		Attempts:  3,
		BaseDelay: 50 * time.Millisecond,
		MaxDelay:  time.Second,
		Jitter:    true,
	}
}

// Do calls fn until it succeeds, the attempts run out, or ctx is done
func Do(ctx context.Context, p Policy, name string, fn func(context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}

		delay := p.delay(attempt)
		logger.Debug("Operation failed, retrying",
			logger.String("operation", name),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Err(lastErr))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, lastErr)
}

func (p Policy) delay(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if p.MaxDelay > 0 && (d > p.MaxDelay || d <= 0) {
		d = p.MaxDelay
	}
	if p.Jitter && d > 0 {
		d += time.Duration(rand.Int63n(int64(d)/10 + 1))
	}
	return d
}
