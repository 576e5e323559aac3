package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dclhub/dcl-hub-backend/config"
	"github.com/dclhub/dcl-hub-backend/database"
	"github.com/dclhub/dcl-hub-backend/internal/auditlog"
	"github.com/dclhub/dcl-hub-backend/internal/backup"
	"github.com/dclhub/dcl-hub-backend/internal/events"
	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
	"github.com/dclhub/dcl-hub-backend/utils"
)

// openDB connects to Postgres when it is configured. A nil DB means "not configured".
func openDB(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.DatabaseEnabled() {
		return nil, nil
	}
	return database.Connect(cfg)
}

func openStore(ctx context.Context, cfg *config.Config, db *gorm.DB) (kvstore.Store, error) {
	switch cfg.KVBackend {
	case config.BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres backend selected without DB_HOST/DB_NAME")
		}
		store := kvstore.NewPostgresStore(db)
		if err := store.Migrate(); err != nil {
			return nil, fmt.Errorf("migrating kv_store: %w", err)
		}
		return store, nil

	case config.BackendRedis:
		if err := utils.InitRedis(cfg); err != nil {
			return nil, err
		}
		return kvstore.NewRedisStore(utils.RedisClient), nil

	case config.BackendDynamoDB:
		return kvstore.NewDynamoStoreFromConfig(ctx, cfg.AWSRegion, cfg.AWSEndpointURL, cfg.DynamoDBTable)

	case config.BackendFirebase:
		if err := utils.InitFirebase(ctx, cfg); err != nil {
			return nil, err
		}
		if utils.RealtimeDBClient == nil {
			return nil, fmt.Errorf("firebase backend selected without a Realtime Database client")
		}
		return kvstore.NewFirebaseStore(utils.RealtimeDBClient, ""), nil

	default:
		log.Warn().Msg("⚠️ Using the in-memory store; submissions are lost on restart")
		return kvstore.NewMemoryStore(), nil
	}
}

// openBus returns the publisher handlers write to and the subscriber the
// notification dispatcher reads from.
func openBus(cfg *config.Config) (events.Publisher, events.Subscriber, error) {
	switch cfg.EventTransport {
	case config.TransportKafka:
		pub := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		sub := events.NewKafkaSubscriber(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("✅ Kafka event bus ready")
		return pub, sub, nil

	case config.TransportNATS:
		pub, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			return nil, nil, err
		}
		sub, err := events.NewNATSSubscriber(cfg.NATSURL)
		if err != nil {
			_ = pub.Close()
			return nil, nil, err
		}
		log.Info().Str("url", cfg.NATSURL).Msg("✅ NATS event bus ready")
		return pub, sub, nil

	case config.TransportRedis:
		if err := utils.InitRedis(cfg); err != nil {
			return nil, nil, err
		}
		return events.NewRedisPublisher(utils.RedisClient), events.NewRedisSubscriber(utils.RedisClient), nil

	default:
		bus := events.NewLocalBus()
		return bus, bus, nil
	}
}

func openAuditRepo(db *gorm.DB) (auditlog.Repository, error) {
	if db == nil {
		log.Info().Msg("ℹ️ No database configured, audit log kept in memory")
		return auditlog.NewMemoryRepository(0), nil
	}
	if err := db.AutoMigrate(&auditlog.AuditLog{}); err != nil {
		return nil, fmt.Errorf("migrating audit_logs: %w", err)
	}
	return auditlog.NewRepository(db), nil
}

// openBackups returns nil when no bucket is configured.
func openBackups(ctx context.Context, cfg *config.Config) (backup.Destination, error) {
	if cfg.BackupBucket == "" {
		return nil, nil
	}
	dest, err := backup.NewS3Destination(ctx, cfg.BackupBucket, cfg.AWSRegion, cfg.AWSEndpointURL)
	if err != nil {
		return nil, err
	}
	return dest, nil
}
