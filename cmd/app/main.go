package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"quickcommerce/cmd"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err = root.StartJobs(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("Web server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}

	if err = root.Shutdown(shutdownCtx); err != nil {
		logger.Error("Application shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		CounterBackend:          goDotEnvVariable("COUNTER_BACKEND"),
		CounterDir:              goDotEnvVariable("COUNTER_DIR"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		OrderExpiry:             durationVariable("ORDER_EXPIRY_MINUTES", 30) * time.Minute,
		AutoCancelEnabled:       boolVariable("AUTO_CANCEL_ENABLED", true),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationVariable(key string, defaultValue time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s value: %s", key, raw)
	}
	return time.Duration(parsed)
}

func boolVariable(key string, defaultValue bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid %s value: %s", key, raw)
	}
	return parsed
}
