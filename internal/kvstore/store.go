package kvstore

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Entry is one key/value pair returned from a prefix scan.
type Entry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Store is the flat key-value namespace every submission is written to.
// Values are JSON documents. No transactional guarantee is implied.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	// GetByPrefix returns every entry whose key starts with prefix, ordered by key.
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}

// Incrementer is implemented by backends that can add to a numeric key atomically.
// A missing key counts as zero.
type Incrementer interface {
	IncrBy(ctx context.Context, key string, delta float64) (float64, error)
}

// Closer is implemented by backends holding a connection.
type Closer interface {
	Close() error
}

// Close releases the store's connection if it holds one.
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
