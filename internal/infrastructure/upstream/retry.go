// Package upstream holds the retry and failure classification shared by every outbound
// integration (carrier APIs, the automation provider).
package upstream

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"brokerage_crm/internal/domain/domainerr"
)

// RetryPolicy is capped exponential backoff with jitter.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Jitter disables randomization when false; tests use it for deterministic delays.
	Jitter bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 200 * time.Millisecond, MaxDelay: 5 * time.Second, Jitter: true}
}

// Backoff returns the delay before retry number attempt (0-based).
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 16 {
		attempt = 16
	}
	base := p.BaseDelay
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	d := base * time.Duration(1<<attempt)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if !p.Jitter || d <= 1 {
		return d
	}
	half := d / 2
	return half + time.Duration(rand.Int64N(int64(half)+1))
}

// Do runs fn until it succeeds, returns a non-transient error, attempts are exhausted or ctx ends.
// onRetry, when set, is called before each wait.
func Do(ctx context.Context, p RetryPolicy, onRetry func(attempt int, err error), fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !domainerr.IsTransient(lastErr) || attempt == attempts-1 {
			return lastErr
		}

		if onRetry != nil {
			onRetry(attempt+1, lastErr)
		}
		t := time.NewTimer(p.Backoff(attempt))
		select {
		case <-ctx.Done():
			t.Stop()
			return lastErr
		case <-t.C:
		}
	}
	return lastErr
}

// ClassifyStatus turns a non-2xx HTTP status into a domain error. 404 means the remote has no
// record of id; 408, 425, 429 and 5xx are transient; the rest are permanent.
func ClassifyStatus(service, operation, id string, status int, body string) error {
	if status >= 200 && status < 300 {
		return nil
	}
	if status == 404 && id != "" {
		return domainerr.NewNotFoundError(service+" quote", id)
	}
	var cause error
	if body != "" {
		cause = errors.New(truncate(body, 256))
	}
	return &domainerr.UpstreamError{
		Service:    service,
		Operation:  operation,
		StatusCode: status,
		Transient:  status == 408 || status == 425 || status == 429 || status >= 500,
		Cause:      cause,
	}
}

// NetworkError wraps a transport-level failure. Cancellation by the caller is not retried.
func NetworkError(service, operation string, err error) error {
	transient := !errors.Is(err, context.Canceled)
	return &domainerr.UpstreamError{Service: service, Operation: operation, Transient: transient, Cause: err}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
