package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"qr-menu/internal/config"
	"qr-menu/internal/database"
	"qr-menu/internal/logger"
	"qr-menu/internal/messaging"
	"qr-menu/internal/services/menu"
)

func main() {
	port := flag.Int("port", 3000, "HTTP port")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("menu-service")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", requestID, fmt.Sprintf("Starting menu service on port %d", *port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", requestID, "Received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg, log, *port); err != nil {
		log.Error("service_failed", requestID, "Menu service failed", err)
		os.Exit(1)
	}

	log.Info("service_stopped", requestID, "Service stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, port int) error {
	requestID := logger.GenerateRequestID()

	store, cleanup, err := buildStore(ctx, cfg, log, requestID)
	if err != nil {
		return err
	}
	defer cleanup()

	events, closeEvents, err := buildPublisher(cfg, log, requestID)
	if err != nil {
		return err
	}
	defer closeEvents()

	service := menu.NewService(store, events, log)
	handler := menu.NewHandler(service, log)

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler.Routes(),
	}

	go func() {
		log.Info("http_listening", requestID, fmt.Sprintf("Menu service listening on port %d", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", requestID, "HTTP server failed", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// buildStore selects the repository backend: Postgres when configured, the
// seeded in-memory store otherwise.
func buildStore(ctx context.Context, cfg *config.Config, log *logger.Logger, requestID string) (menu.Store, func(), error) {
	if !cfg.DatabaseEnabled() {
		log.Info("store_selected", requestID, "Using in-memory menu store with seed data")
		return menu.NewSeededMemoryStore(), func() {}, nil
	}

	db, err := database.New(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("db_connected", requestID, "Connected to PostgreSQL database")
	return menu.NewPostgresStore(db), db.Close, nil
}

// buildPublisher wires menu change events to RabbitMQ when configured and
// falls back to a no-op publisher otherwise.
func buildPublisher(cfg *config.Config, log *logger.Logger, requestID string) (menu.EventPublisher, func(), error) {
	if !cfg.RabbitMQEnabled() {
		return menu.NopPublisher{}, func() {}, nil
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize messaging: %w", err)
	}

	log.Info("rabbitmq_connected", requestID, "Connected to RabbitMQ")
	return messaging.NewPublisher(conn, log), func() { conn.Close() }, nil
}
