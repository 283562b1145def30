package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thumathina/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	config := getConfig(logger)

	db, err := gorm.Open(gorm_postgres.Open(dsn(config)), &gorm.Config{})
	if err != nil {
		logger.Error("Opening database failed", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		logger.Error("Wiring adapters failed", "error", err)
		os.Exit(1)
	}
	defer root.Close()

	if err := root.Migrate(); err != nil {
		logger.Error("Running migrations failed", "error", err)
		os.Exit(1)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Starting jobs failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if consumer := root.CheckoutConsumer(); consumer != nil {
		go func() {
			if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("Checkout consumer stopped", "error", err)
			}
		}()
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	root.CreateHTTPServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file, using process environment")
	}

	return cmd.Config{
		HTTPPort:                    os.Getenv("HTTP_PORT"),
		DBHost:                      os.Getenv("DB_HOST"),
		DBPort:                      os.Getenv("DB_PORT"),
		DBUser:                      os.Getenv("DB_USER"),
		DBPassword:                  os.Getenv("DB_PASSWORD"),
		DBName:                      os.Getenv("DB_NAME"),
		DBSslMode:                   os.Getenv("DB_SSLMODE"),
		KafkaHost:                   os.Getenv("KAFKA_HOST"),
		KafkaConsumerGroup:          os.Getenv("KAFKA_CONSUMER_GROUP"),
		KafkaCheckoutConfirmedTopic: os.Getenv("KAFKA_CHECKOUT_CONFIRMED_TOPIC"),
		KafkaOrderChangedTopic:      os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		DriverOrdersRefreshSpec:     os.Getenv("DRIVER_ORDERS_REFRESH_SPEC"),
	}
}

func dsn(config cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
}
