package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher publishes events on Redis pub/sub channels named after the topic.
// The client is shared with other components and is not closed here.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	return p.client.Publish(ctx, topic, data).Err()
}

func (p *RedisPublisher) Close() error {
	return nil
}

// RedisSubscriber pattern-subscribes on Redis pub/sub.
type RedisSubscriber struct {
	client *redis.Client
}

func NewRedisSubscriber(client *redis.Client) *RedisSubscriber {
	return &RedisSubscriber{client: client}
}

func (s *RedisSubscriber) Subscribe(pattern string) (<-chan []byte, func(), error) {
	ctx := context.Background()
	ps := s.client.PSubscribe(ctx, redisPattern(pattern))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("subscribing to %s: %w", pattern, err)
	}

	ch := make(chan []byte, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(ch)
		for msg := range ps.Channel() {
			if !MatchTopic(pattern, msg.Channel) {
				continue
			}
			select {
			case ch <- []byte(msg.Payload):
			default:
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			_ = ps.Close()
			<-done
		})
	}
	return ch, cancel, nil
}

func (s *RedisSubscriber) Close() error {
	return nil
}

// redisPattern turns a NATS-style pattern into a Redis glob. The glob is
// wider than the pattern, so messages are re-checked with MatchTopic.
func redisPattern(pattern string) string {
	return strings.ReplaceAll(pattern, ">", "*")
}
