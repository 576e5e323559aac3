package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"firebase.google.com/go/v4/db"
)

// FirebaseStore keeps the namespace as children of one Realtime Database node.
type FirebaseStore struct {
	client *db.Client
	root   string
}

var (
	_ Store       = (*FirebaseStore)(nil)
	_ Incrementer = (*FirebaseStore)(nil)
)

func NewFirebaseStore(client *db.Client, root string) *FirebaseStore {
	if root == "" {
		root = "kv_store"
	}
	return &FirebaseStore{client: client, root: root}
}

func (s *FirebaseStore) ref(key string) *db.Ref {
	return s.client.NewRef(s.root).Child(encodeFirebaseKey(key))
}

func (s *FirebaseStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.ref(key).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("firebase get %s: %w", key, err)
	}
	if isJSONNull(raw) {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (s *FirebaseStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := s.ref(key).Set(ctx, value); err != nil {
		return fmt.Errorf("firebase set %s: %w", key, err)
	}
	return nil
}

func (s *FirebaseStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	enc := encodeFirebaseKey(prefix)
	var children map[string]json.RawMessage
	err := s.client.NewRef(s.root).
		OrderByKey().
		StartAt(enc).
		EndAt(enc+"\uf8ff").
		Get(ctx, &children)
	if err != nil {
		return nil, fmt.Errorf("firebase scan %s: %w", prefix, err)
	}

	entries := make([]Entry, 0, len(children))
	for k, v := range children {
		key := decodeFirebaseKey(k)
		if !strings.HasPrefix(key, prefix) || isJSONNull(v) {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// IncrBy runs a Realtime Database transaction, which retries on concurrent modification.
func (s *FirebaseStore) IncrBy(ctx context.Context, key string, delta float64) (float64, error) {
	var next float64
	err := s.ref(key).Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		var current json.RawMessage
		if err := node.Unmarshal(&current); err != nil {
			return nil, err
		}
		next = ParseNumber(current) + delta
		return next, nil
	})
	if err != nil {
		return 0, fmt.Errorf("firebase increment %s: %w", key, err)
	}
	return next, nil
}

var (
	firebaseKeyEncoder = strings.NewReplacer(
		"%", "%25", ".", "%2E", "#", "%23", "$", "%24", "[", "%5B", "]", "%5D", "/", "%2F",
	)
	firebaseKeyDecoder = strings.NewReplacer(
		"%2E", ".", "%23", "#", "%24", "$", "%5B", "[", "%5D", "]", "%2F", "/", "%25", "%",
	)
)

// encodeFirebaseKey escapes characters the Realtime Database forbids in keys.
func encodeFirebaseKey(k string) string {
	return firebaseKeyEncoder.Replace(k)
}

func decodeFirebaseKey(k string) string {
	return firebaseKeyDecoder.Replace(k)
}

func isJSONNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
