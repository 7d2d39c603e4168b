package upstream

import (
	"context"
	"errors"
	"testing"
	"time"

	"brokerage_crm/internal/domain/domainerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := RetryPolicy{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}
	assert.Equal(t, 100*time.Millisecond, p.Backoff(0))
	assert.Equal(t, 200*time.Millisecond, p.Backoff(1))
	assert.Equal(t, 400*time.Millisecond, p.Backoff(2))
	assert.Equal(t, time.Second, p.Backoff(10))
	assert.Equal(t, 100*time.Millisecond, p.Backoff(-3))

	p.Jitter = true
	for i := 0; i < 50; i++ {
		d := p.Backoff(2)
		assert.GreaterOrEqual(t, d, 200*time.Millisecond)
		assert.LessOrEqual(t, d, 400*time.Millisecond)
	}
}

func TestDo(t *testing.T) {
	transient := &domainerr.UpstreamError{Service: "btis", Operation: "submit", StatusCode: 503, Transient: true}
	permanent := &domainerr.UpstreamError{Service: "btis", Operation: "submit", StatusCode: 400}

	t.Run("retries transient errors until success", func(t *testing.T) {
		calls, retries := 0, 0
		err := Do(context.Background(), fastPolicy(3), func(int, error) { retries++ }, func(context.Context) error {
			calls++
			if calls < 3 {
				return transient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 2, retries)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fastPolicy(5), nil, func(context.Context) error {
			calls++
			return permanent
		})
		assert.Same(t, permanent, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fastPolicy(4), nil, func(context.Context) error {
			calls++
			return transient
		})
		assert.True(t, domainerr.IsTransient(err))
		assert.Equal(t, 4, calls)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := Do(ctx, RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}, nil, func(context.Context) error {
			calls++
			cancel()
			return transient
		})
		assert.ErrorIs(t, err, domainerr.ErrTransientUpstream)
		assert.Equal(t, 1, calls)
	})
}

func TestClassifyStatus(t *testing.T) {
	assert.NoError(t, ClassifyStatus("btis", "submit", "", 201, ""))

	err := ClassifyStatus("btis", "status", "Q-1", 404, "")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)

	for _, status := range []int{408, 429, 500, 502, 503} {
		err := ClassifyStatus("btis", "submit", "", status, "busy")
		assert.Truef(t, domainerr.IsTransient(err), "status %d should be transient", status)
	}

	err = ClassifyStatus("btis", "submit", "", 422, "bad fein")
	assert.ErrorIs(t, err, domainerr.ErrUpstream)
	assert.False(t, domainerr.IsTransient(err))
	assert.Contains(t, err.Error(), "status 422")
	assert.Contains(t, err.Error(), "bad fein")
}

func TestNetworkError(t *testing.T) {
	assert.True(t, domainerr.IsTransient(NetworkError("btis", "submit", errors.New("connection reset"))))
	assert.False(t, domainerr.IsTransient(NetworkError("btis", "submit", context.Canceled)))
}
