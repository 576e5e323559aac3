package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// LocalBus delivers events to subscribers inside the same process. It is the
// transport when no broker is configured.
type LocalBus struct {
	mu     sync.RWMutex
	subs   map[int]*localSub
	nextID int
}

type localSub struct {
	pattern string
	ch      chan []byte
}

var (
	_ Publisher  = (*LocalBus)(nil)
	_ Subscriber = (*LocalBus)(nil)
)

func NewLocalBus() *LocalBus {
	return &LocalBus{subs: make(map[int]*localSub)}
}

func (b *LocalBus) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		if !MatchTopic(s.pattern, topic) {
			continue
		}
		select {
		case s.ch <- data:
		default:
			// subscriber is not keeping up
		}
	}
	return nil
}

func (b *LocalBus) Subscribe(pattern string) (<-chan []byte, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	s := &localSub{pattern: pattern, ch: make(chan []byte, 64)}
	b.subs[id] = s

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(s.ch)
		})
	}
	return s.ch, cancel, nil
}

func (b *LocalBus) Close() error {
	return nil
}
