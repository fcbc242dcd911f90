package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string

	// PostgresURL selects the durable stores. Empty means in-memory
	// stores, which is how dev mode and most tests run.
	PostgresURL string

	// RedisURL, when set, backs the reputation totals with Redis
	// instead of Postgres.
	RedisURL string

	// KafkaBrokers, when set, enables the Kafka notification sink on
	// KafkaTopic in addition to the inbox store.
	KafkaBrokers []string
	KafkaTopic   string

	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main
// stays lean.
func FromEnv() Server {
	addr := os.Getenv("FACTNODE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("KAFKA_NOTIFICATIONS_TOPIC")
	if topic == "" {
		topic = "factnode.notifications"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return Server{
		Addr:            addr,
		JWTSigningKey:   jwtSigningKey,
		PostgresURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		KafkaBrokers:    brokers,
		KafkaTopic:      topic,
		ShutdownTimeout: 10 * time.Second,
	}
}
