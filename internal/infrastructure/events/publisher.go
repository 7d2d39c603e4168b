// Package events publishes domain events over Redis Pub/Sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brokerage_crm/internal/infrastructure/metrics"
	"brokerage_crm/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "brokerage:"

// Channel is the Redis channel an event type is published on.
func Channel(eventType string) string { return channelPrefix + eventType }

// RedisPublisher implements IEventPublisher over Redis Pub/Sub.
type RedisPublisher struct {
	rdb     *redis.Client
	timeout time.Duration
	log     *zap.Logger
}

var _ interfaces.IEventPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(rdb *redis.Client, log *zap.Logger) *RedisPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisPublisher{rdb: rdb, timeout: 2 * time.Second, log: log}
}

func (p *RedisPublisher) Publish(ctx context.Context, evt interfaces.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	data, err := json.Marshal(evt)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(evt.Type, "error").Inc()
		return fmt.Errorf("failed to marshal event %s: %w", evt.Type, err)
	}
	if err := p.rdb.Publish(ctx, Channel(evt.Type), data).Err(); err != nil {
		metrics.EventsPublished.WithLabelValues(evt.Type, "error").Inc()
		return fmt.Errorf("failed to publish event %s: %w", evt.Type, err)
	}
	metrics.EventsPublished.WithLabelValues(evt.Type, "ok").Inc()
	p.log.Debug("event published", zap.String("event_type", evt.Type))
	return nil
}

// Subscribe delivers events of the given types to handle until ctx ends. Undecodable
// messages are skipped.
func (p *RedisPublisher) Subscribe(ctx context.Context, handle func(interfaces.Event), eventTypes ...string) error {
	channels := make([]string, 0, len(eventTypes))
	for _, t := range eventTypes {
		channels = append(channels, Channel(t))
	}
	ps := p.rdb.Subscribe(ctx, channels...)
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var evt interfaces.Event
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				p.log.Warn("skipping undecodable event", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			handle(evt)
		}
	}
}

// LogPublisher records events in the log only; used when Redis is not configured.
type LogPublisher struct {
	log *zap.Logger
}

var _ interfaces.IEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, evt interfaces.Event) error {
	metrics.EventsPublished.WithLabelValues(evt.Type, "logged").Inc()
	p.log.Info("event", zap.String("event_type", evt.Type), zap.Any("payload", evt.Payload))
	return nil
}
