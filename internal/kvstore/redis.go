package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const redisScanCount = 500

// RedisStore maps keys one-to-one onto Redis string keys.
type RedisStore struct {
	client *redis.Client
}

var (
	_ Store       = (*RedisStore)(nil)
	_ Incrementer = (*RedisStore)(nil)
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	v, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(v), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	return s.client.Set(ctx, key, []byte(value), 0).Err()
}

func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, escapeGlob(prefix)+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for start := 0; start < len(keys); start += redisScanCount {
		end := min(start+redisScanCount, len(keys))
		batch := keys[start:end]
		values, err := s.client.MGet(ctx, batch...).Result()
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			str, ok := v.(string)
			if !ok {
				// deleted between SCAN and MGET
				continue
			}
			entries = append(entries, Entry{Key: batch[i], Value: json.RawMessage(str)})
		}
	}
	return entries, nil
}

func (s *RedisStore) IncrBy(ctx context.Context, key string, delta float64) (float64, error) {
	return s.client.IncrByFloat(ctx, key, delta).Result()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
