package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and never mutated afterwards.
type Config struct {
	AppPort      string
	DatabaseDSN  string
	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string
	JWTSecret    string
}

func Load() Config {
	return Config{
		AppPort:      getenv("APP_PORT", "8080"),
		DatabaseDSN:  databaseDSN(),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: kafkaBrokers(),
		KafkaTopic:   getenv("KAFKA_TOPIC", "order-topic"),
		JWTSecret:    getenv("JWT_SECRET", "change-me-in-production"),
	}
}

func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return dsn
	}

	host := getenv("DB_HOST", "127.0.0.1")
	port := getenv("DB_PORT", "3306")
	user := getenv("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	name := getenv("DB_NAME", "pos-db")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, name)
}

func kafkaBrokers() []string {
	brokers := getenv("KAFKA_BROKERS", "localhost:9092")
	return strings.Split(brokers, ",")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
