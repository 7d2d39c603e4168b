package events

import (
	"context"
	"testing"
	"time"

	"brokerage_crm/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestChannel(t *testing.T) {
	assert.Equal(t, "brokerage:quote.ingested", Channel(interfaces.EventQuoteIngested))
}

func TestRedisPublisher_UnreachableServer(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	p := NewRedisPublisher(rdb, nil)
	err := p.Publish(context.Background(), interfaces.Event{Type: interfaces.EventQuoteIngested, OccurredAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote.ingested")
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	err := p.Publish(context.Background(), interfaces.Event{Type: interfaces.EventAutomationCompleted, Payload: map[string]any{"session_id": "bb_1"}})
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, interfaces.EventAutomationCompleted, logs.All()[0].ContextMap()["event_type"])
}
