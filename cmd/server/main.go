package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/gunturaf/sukab-restaurant/internal/config"
	"github.com/gunturaf/sukab-restaurant/internal/database"
	"github.com/gunturaf/sukab-restaurant/internal/logger"
	"github.com/gunturaf/sukab-restaurant/internal/messaging"
	"github.com/gunturaf/sukab-restaurant/internal/services/order"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("order-service", cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("service_failed", "Order service failed", "startup", err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", "", nil)
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", "startup", nil)

	if err := db.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var events order.EventPublisher
	if cfg.RabbitMQ.Enabled() {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize messaging: %w", err)
		}
		defer conn.Close()

		log.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", nil)
		events = messaging.NewPublisher(conn, log)
	}

	cookTimes, err := order.NewCookTimeGenerator(cfg.CookTime.Min, cfg.CookTime.Max)
	if err != nil {
		return fmt.Errorf("failed to configure cook time generator: %w", err)
	}

	repo := order.NewRepository(db)
	service := order.NewService(repo, cookTimes, events, log)
	handler := order.NewHandler(service, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(50))))
	e.Use(order.RequestLogger(log))
	handler.Register(e)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	go func() {
		log.Info("service_started", fmt.Sprintf("Order service listening on %s", addr), "startup", map[string]interface{}{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server_failed", "HTTP server failed", "", err, nil)
		}
	}()

	<-ctx.Done()
	log.Info("graceful_shutdown", "Received shutdown signal", "", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
