package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "donation:nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "contact:1", json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Set(ctx, "contact:1", json.RawMessage(`{"v":2}`)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, err := s.Get(ctx, "contact:1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Get() = %s, want %s", got, `{"v":2}`)
	}
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, k := range []string{
		"event_registration:b",
		"event_registration:a",
		"event_registration_count:ev-1",
		"donation:x",
	} {
		if err := s.Set(ctx, k, json.RawMessage(`{}`)); err != nil {
			t.Fatalf("Set(%s) error: %v", k, err)
		}
	}

	entries, err := s.GetByPrefix(ctx, "event_registration:")
	if err != nil {
		t.Fatalf("GetByPrefix() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("GetByPrefix() returned %d entries, want 2", len(entries))
	}
	if entries[0].Key != "event_registration:a" || entries[1].Key != "event_registration:b" {
		t.Errorf("entries not sorted by key: %q, %q", entries[0].Key, entries[1].Key)
	}

	empty, err := s.GetByPrefix(ctx, "volunteer:")
	if err != nil {
		t.Fatalf("GetByPrefix() error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("GetByPrefix() on empty prefix = %#v, want empty non-nil slice", empty)
	}
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	in := json.RawMessage(`{"a":1}`)
	if err := s.Set(ctx, "k", in); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	in[2] = 'b'

	got, _ := s.Get(ctx, "k")
	if string(got) != `{"a":1}` {
		t.Errorf("stored value mutated through caller slice: %s", got)
	}
}
