package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection stores records of one type under "<prefix>:<id>" keys.
type Collection[T any] struct {
	store  Store
	prefix string
}

func NewCollection[T any](store Store, prefix string) *Collection[T] {
	return &Collection[T]{store: store, prefix: prefix}
}

// Key returns the storage key for id.
func (c *Collection[T]) Key(id string) string {
	return c.prefix + ":" + id
}

// Prefix returns the scan prefix covering every record of the collection.
func (c *Collection[T]) Prefix() string {
	return c.prefix + ":"
}

func (c *Collection[T]) Put(ctx context.Context, id string, record *T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling %s record: %w", c.prefix, err)
	}
	return c.store.Set(ctx, c.Key(id), data)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	raw, err := c.store.Get(ctx, c.Key(id))
	if err != nil {
		return nil, err
	}
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.Key(id), err)
	}
	return &record, nil
}

// List decodes every record under the collection prefix. The result is never nil.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	entries, err := c.store.GetByPrefix(ctx, c.Prefix())
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, len(entries))
	for _, e := range entries {
		var record T
		if err := json.Unmarshal(e.Value, &record); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", e.Key, err)
		}
		records = append(records, record)
	}
	return records, nil
}
