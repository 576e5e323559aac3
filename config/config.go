package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Storage backends selectable with KV_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendDynamoDB = "dynamodb"
	BackendFirebase = "firebase"
)

// Event bus transports selectable with EVENT_TRANSPORT.
const (
	TransportNone  = "none"
	TransportKafka = "kafka"
	TransportNATS  = "nats"
	TransportRedis = "redis"
)

type Config struct {
	Port          string
	ServicePrefix string
	PublicAnonKey string

	// ✅ Storage
	KVBackend   string
	CounterMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ AWS (DynamoDB store + S3 backups)
	AWSRegion      string
	AWSEndpointURL string
	DynamoDBTable  string
	BackupBucket   string
	BackupPrefix   string

	// ✅ Firebase (RTDB store + FCM staff pushes)
	FirebaseCredentialsPath string
	FirebaseDatabaseURL     string
	FirebaseProjectID       string
	FCMStaffTopic           string

	// ✅ Event bus
	EventTransport string
	KafkaBrokers   []string
	KafkaTopic     string
	KafkaGroupID   string
	NATSURL        string

	// ✅ SMTP Config
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// ✅ Admin surface
	AdminJWTSecret     string
	AdminPasswordHash  string
	AdminTokenTTLHours int
	AdminRateLimit     int64

	LogLevel  string
	LogFormat string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file, using environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		ServicePrefix: normalizePrefix(getEnv("SERVICE_PREFIX", "/make-server")),
		PublicAnonKey: os.Getenv("PUBLIC_ANON_KEY"),

		KVBackend:   strings.ToLower(getEnv("KV_BACKEND", BackendMemory)),
		CounterMode: strings.ToLower(getEnv("COUNTER_MODE", "atomic")),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: os.Getenv("AWS_ENDPOINT_URL"),
		DynamoDBTable:  os.Getenv("DYNAMODB_TABLE"),
		BackupBucket:   os.Getenv("BACKUP_S3_BUCKET"),
		BackupPrefix:   getEnv("BACKUP_S3_PREFIX", "backups"),

		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
		FirebaseDatabaseURL:     os.Getenv("FIREBASE_DATABASE_URL"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FCMStaffTopic:           getEnv("FCM_STAFF_TOPIC", "staff"),

		EventTransport: strings.ToLower(getEnv("EVENT_TRANSPORT", TransportNone)),
		KafkaBrokers:   splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "submissions"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "dcl-hub-notifications"),
		NATSURL:        getEnv("NATS_URL", "nats://127.0.0.1:4222"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "DCL Hub"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		AdminJWTSecret:     os.Getenv("ADMIN_JWT_SECRET"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTokenTTLHours: getInt("ADMIN_TOKEN_TTL_HOURS", 12),
		AdminRateLimit:     int64(getInt("ADMIN_RATE_LIMIT", 100)),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

// Validate reports missing settings for the selected backend and transport.
func (c *Config) Validate() error {
	var problems []string

	if c.PublicAnonKey == "" {
		problems = append(problems, "PUBLIC_ANON_KEY is required")
	}

	switch c.KVBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DBHost == "" || c.DBName == "" {
			problems = append(problems, "DB_HOST and DB_NAME are required for the postgres backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			problems = append(problems, "REDIS_ADDR is required for the redis backend")
		}
	case BackendDynamoDB:
		if c.DynamoDBTable == "" {
			problems = append(problems, "DYNAMODB_TABLE is required for the dynamodb backend")
		}
	case BackendFirebase:
		if c.FirebaseDatabaseURL == "" {
			problems = append(problems, "FIREBASE_DATABASE_URL is required for the firebase backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown KV_BACKEND %q", c.KVBackend))
	}

	switch c.CounterMode {
	case "atomic", "read-modify-write":
	default:
		problems = append(problems, fmt.Sprintf("unknown COUNTER_MODE %q", c.CounterMode))
	}

	switch c.EventTransport {
	case TransportNone, TransportNATS, TransportRedis:
	case TransportKafka:
		if len(c.KafkaBrokers) == 0 {
			problems = append(problems, "KAFKA_BROKERS is required for the kafka transport")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown EVENT_TRANSPORT %q", c.EventTransport))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DatabaseEnabled reports whether a Postgres connection is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("⚠️ Invalid integer, using default")
		return fallback
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizePrefix(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
