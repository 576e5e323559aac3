package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return NewPostgresStore(db), mock
}

var kvColumns = []string{"key", "value", "created_at", "updated_at"}

func TestPostgresStore_Get(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "kv_store" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows(kvColumns).AddRow("donation:d1", []byte(`{"id":"d1"}`), now, now))

	got, err := s.Get(context.Background(), "donation:d1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != `{"id":"d1"}` {
		t.Errorf("Get() = %s, want %s", got, `{"id":"d1"}`)
	}
}

func TestPostgresStore_GetMissing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "kv_store" WHERE key = \$1`).
		WillReturnRows(sqlmock.NewRows(kvColumns))

	_, err := s.Get(context.Background(), "donation:nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestPostgresStore_Set(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "kv_store" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Set(context.Background(), "contact:c1", json.RawMessage(`{"id":"c1"}`)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
}

func TestPostgresStore_GetByPrefixEscapesLike(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "kv_store" WHERE key LIKE \$1 ORDER BY key`).
		WithArgs(`event\_registration:%`).
		WillReturnRows(sqlmock.NewRows(kvColumns).
			AddRow("event_registration:a", []byte(`{"id":"a"}`), now, now).
			AddRow("event_registration:b", []byte(`{"id":"b"}`), now, now))

	entries, err := s.GetByPrefix(context.Background(), "event_registration:")
	if err != nil {
		t.Fatalf("GetByPrefix() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("GetByPrefix() returned %d entries, want 2", len(entries))
	}
	if entries[1].Key != "event_registration:b" || string(entries[1].Value) != `{"id":"b"}` {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestPostgresStore_IncrBy(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO kv_store`).
		WithArgs("campaign_total:camp-1", "50").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("150"))

	got, err := s.IncrBy(context.Background(), "campaign_total:camp-1", 50)
	if err != nil {
		t.Fatalf("IncrBy() error: %v", err)
	}
	if got != 150 {
		t.Errorf("IncrBy() = %v, want 150", got)
	}
}

func TestEscapeLike(t *testing.T) {
	for in, want := range map[string]string{
		"donation:":           "donation:",
		"event_registration:": `event\_registration:`,
		"100%":                `100\%`,
		`a\b`:                 `a\\b`,
	} {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
