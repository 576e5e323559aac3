package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVICE_PREFIX", "")
	t.Setenv("KV_BACKEND", "")
	t.Setenv("COUNTER_MODE", "")
	t.Setenv("EVENT_TRANSPORT", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.ServicePrefix != "/make-server" {
		t.Errorf("ServicePrefix = %q, want %q", cfg.ServicePrefix, "/make-server")
	}
	if cfg.KVBackend != BackendMemory {
		t.Errorf("KVBackend = %q, want %q", cfg.KVBackend, BackendMemory)
	}
	if cfg.CounterMode != "atomic" {
		t.Errorf("CounterMode = %q, want %q", cfg.CounterMode, "atomic")
	}
	if cfg.EventTransport != TransportNone {
		t.Errorf("EventTransport = %q, want %q", cfg.EventTransport, TransportNone)
	}
}

func TestLoadParsesLists(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,,")
	t.Setenv("SERVICE_PREFIX", "functions/v1/")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()
	if got := strings.Join(cfg.KafkaBrokers, "|"); got != "kafka-1:9092|kafka-2:9092" {
		t.Errorf("KafkaBrokers = %q", got)
	}
	if cfg.ServicePrefix != "/functions/v1" {
		t.Errorf("ServicePrefix = %q, want %q", cfg.ServicePrefix, "/functions/v1")
	}
	if cfg.RedisDB != 0 {
		t.Errorf("RedisDB = %d, want fallback 0", cfg.RedisDB)
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "memory ok", mutate: func(c *Config) {}},
		{name: "missing key", mutate: func(c *Config) { c.PublicAnonKey = "" }, wantErr: "PUBLIC_ANON_KEY"},
		{name: "postgres needs host", mutate: func(c *Config) { c.KVBackend = BackendPostgres }, wantErr: "DB_HOST"},
		{name: "dynamodb needs table", mutate: func(c *Config) { c.KVBackend = BackendDynamoDB }, wantErr: "DYNAMODB_TABLE"},
		{name: "firebase needs url", mutate: func(c *Config) { c.KVBackend = BackendFirebase }, wantErr: "FIREBASE_DATABASE_URL"},
		{name: "unknown backend", mutate: func(c *Config) { c.KVBackend = "etcd" }, wantErr: "unknown KV_BACKEND"},
		{name: "unknown counter mode", mutate: func(c *Config) { c.CounterMode = "eventual" }, wantErr: "COUNTER_MODE"},
		{name: "kafka needs brokers", mutate: func(c *Config) { c.EventTransport = TransportKafka }, wantErr: "KAFKA_BROKERS"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				PublicAnonKey:  "anon",
				KVBackend:      BackendMemory,
				CounterMode:    "atomic",
				EventTransport: TransportNone,
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tc.wantErr)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
