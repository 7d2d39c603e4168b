package browserbase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/infrastructure/upstream"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		APIURL:    srv.URL,
		APIKey:    "bb-key",
		ProjectID: "proj-1",
		Retry:     upstream.RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond},
	}, srv.Client(), nil)
}

func TestClient_CreateSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions", r.URL.Path)
		assert.Equal(t, "bb-key", r.Header.Get("X-BB-API-Key"))

		var body createSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "proj-1", body.ProjectID)
		assert.Equal(t, "run-1", body.UserMetadata["run_id"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"sess-1","connectUrl":"wss://connect.example/sess-1","status":"RUNNING"}`))
	})

	s, err := c.CreateSession(context.Background(), interfaces.AutomationSpec{RunID: "run-1", CarrierName: "Markel", QuoteID: "q-1"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", s.SessionID)
	assert.Equal(t, "wss://connect.example/sess-1", s.ConnectURL)
}

func TestClient_CreateSessionFailures(t *testing.T) {
	t.Run("transient then success", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"id":"sess-2"}`))
		})
		s, err := c.CreateSession(context.Background(), interfaces.AutomationSpec{})
		require.NoError(t, err)
		assert.Equal(t, "sess-2", s.SessionID)
		assert.Empty(t, s.ConnectURL)
	})

	t.Run("persistent 503 is transient", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		_, err := c.CreateSession(context.Background(), interfaces.AutomationSpec{})
		assert.True(t, errors.Is(err, domainerr.ErrTransientUpstream))
	})

	t.Run("unauthorized is permanent", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := c.CreateSession(context.Background(), interfaces.AutomationSpec{})
		require.Error(t, err)
		assert.False(t, domainerr.IsTransient(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("missing id", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})
		_, err := c.CreateSession(context.Background(), interfaces.AutomationSpec{})
		assert.True(t, errors.Is(err, domainerr.ErrUpstream))
	})
}
