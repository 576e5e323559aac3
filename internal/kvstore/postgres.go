package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry represents the kv_store table
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:255" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_store"
}

// PostgresStore keeps the namespace in a single jsonb table.
type PostgresStore struct {
	db *gorm.DB
}

var (
	_ Store       = (*PostgresStore)(nil)
	_ Incrementer = (*PostgresStore)(nil)
)

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates or updates the kv_store table.
func (s *PostgresStore) Migrate() error {
	return s.db.AutoMigrate(&KVEntry{})
}

func (s *PostgresStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(entry.Value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	entry := KVEntry{Key: key, Value: datatypes.JSON(value)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var rows []KVEntry
	err := s.db.WithContext(ctx).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Order("key").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{Key: r.Key, Value: json.RawMessage(r.Value)})
	}
	return entries, nil
}

const incrementSQL = `INSERT INTO kv_store (key, value, created_at, updated_at)
VALUES (?, to_jsonb(?::numeric), NOW(), NOW())
ON CONFLICT (key) DO UPDATE
SET value = to_jsonb(COALESCE((kv_store.value #>> '{}')::numeric, 0) + (EXCLUDED.value #>> '{}')::numeric),
    updated_at = NOW()
RETURNING value #>> '{}'`

// IncrBy performs the addition inside a single upsert statement.
func (s *PostgresStore) IncrBy(ctx context.Context, key string, delta float64) (float64, error) {
	var out string
	row := s.db.WithContext(ctx).Raw(incrementSQL, key, strconv.FormatFloat(delta, 'f', -1, 64)).Row()
	if err := row.Scan(&out); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(out, 64)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
