package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	Storage    string

	RedisAddr  string
	SessionTTL time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string

	OfferTTL           time.Duration
	AssignmentSchedule string
	ExpirySchedule     string

	OTELEndpoint   string
	ServiceName    string
	ServiceVersion string
	MigrationsPath string
}

// LoadConfig reads the environment after merging an optional .env file into it.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", "delivery"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		Storage:                strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.status-changed"),
		AssignmentSchedule:     getEnv("ASSIGNMENT_SCHEDULE", "* * * * * *"),
		ExpirySchedule:         getEnv("EXPIRY_SCHEDULE", "*/5 * * * * *"),
		OTELEndpoint:           getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:            getEnv("SERVICE_NAME", "fooddelivery"),
		ServiceVersion:         getEnv("SERVICE_VERSION", "0.1.0"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
	}

	var sessionErr, offerErr, storageErr error
	cfg.SessionTTL, sessionErr = getDuration("SESSION_TTL", 24*time.Hour)
	cfg.OfferTTL, offerErr = getDuration("OFFER_TTL", 2*time.Minute)
	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		storageErr = fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, cfg.Storage)
	}
	if err := errors.Join(sessionErr, offerErr, storageErr); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %s", key, d)
	}
	return d, nil
}
