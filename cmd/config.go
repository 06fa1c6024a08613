package cmd

import "time"

// Config carries all runtime settings of the dispatch engine.
// Values come from the .env file, see cmd/app/main.go.
type Config struct {
	HTTPPort string

	// CounterBackend selects where id counters persist: "file" or "postgres".
	CounterBackend string
	CounterDir     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost enables the Kafka notification publisher when non-empty.
	KafkaHost               string
	KafkaNotificationsTopic string

	// OrderExpiry is how long an order may stay undelivered before it is
	// auto-cancelled. Ignored when AutoCancelEnabled is false.
	OrderExpiry       time.Duration
	AutoCancelEnabled bool
}
