package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
)

// CounterMode selects how derived counters are updated.
type CounterMode string

const (
	// CounterAtomic uses the backend's Incrementer, or a per-key lock when the
	// backend has none.
	CounterAtomic CounterMode = "atomic"
	// CounterReadModifyWrite is the unsynchronised get, add, set sequence.
	// Concurrent writers to one key can lose increments.
	CounterReadModifyWrite CounterMode = "read-modify-write"
)

// ParseCounterMode maps a config value onto a CounterMode, defaulting to atomic.
func ParseCounterMode(s string) CounterMode {
	if CounterMode(s) == CounterReadModifyWrite {
		return CounterReadModifyWrite
	}
	return CounterAtomic
}

// Counter maintains numeric aggregate keys such as campaign totals.
type Counter struct {
	store Store
	mode  CounterMode
	locks sync.Map // key -> *sync.Mutex
}

func NewCounter(store Store, mode CounterMode) *Counter {
	return &Counter{store: store, mode: mode}
}

// Mode reports the update strategy in use.
func (c *Counter) Mode() CounterMode {
	return c.mode
}

// Add adds delta to key and returns the value written.
func (c *Counter) Add(ctx context.Context, key string, delta float64) (float64, error) {
	if c.mode == CounterAtomic {
		if inc, ok := c.store.(Incrementer); ok {
			v, err := inc.IncrBy(ctx, key, delta)
			if err != nil {
				return 0, fmt.Errorf("incrementing %s: %w", key, err)
			}
			return v, nil
		}
		mu := c.lockFor(key)
		mu.Lock()
		defer mu.Unlock()
	}
	return c.readModifyWrite(ctx, key, delta)
}

// Value returns the current value of key, zero when it has never been written.
func (c *Counter) Value(ctx context.Context, key string) (float64, error) {
	raw, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", key, err)
	}
	return ParseNumber(raw), nil
}

func (c *Counter) readModifyWrite(ctx context.Context, key string, delta float64) (float64, error) {
	current, err := c.Value(ctx, key)
	if err != nil {
		return 0, err
	}
	next := current + delta
	if err := c.store.Set(ctx, key, FormatNumber(next)); err != nil {
		return 0, fmt.Errorf("writing %s: %w", key, err)
	}
	return next, nil
}

func (c *Counter) lockFor(key string) *sync.Mutex {
	mu, _ := c.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ParseNumber reads a counter value stored either as a JSON number or as a
// numeric string. Anything else counts as zero.
func ParseNumber(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatNumber encodes f as a JSON number.
func FormatNumber(f float64) json.RawMessage {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))
}
