package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/hammerbid/ordertrack/internal/actions"
	"github.com/hammerbid/ordertrack/internal/backend"
	"github.com/hammerbid/ordertrack/internal/config"
	"github.com/hammerbid/ordertrack/internal/kafka"
	"github.com/hammerbid/ordertrack/internal/logger"
	"github.com/hammerbid/ordertrack/internal/notify"
	"github.com/hammerbid/ordertrack/internal/query"
	"github.com/hammerbid/ordertrack/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	zapLogger := logger.New(cfg.LogLevel)
	defer zapLogger.Sync()

	client := backend.New(cfg.BackendAddr,
		backend.WithStaticToken(cfg.BackendToken),
		backend.WithTimeout(cfg.BackendTimeout),
	)

	cache := query.NewOrderCache(client)
	notifier := notify.NewLogNotifier(zapLogger)
	actionService := actions.New(client, cache, notifier)

	var producer server.AuditProducer
	if cfg.AuditEnabled {
		producer = kafka.NewKafkaProducer(cfg.KafkaBrokers, cfg.AuditTopic)
	} else {
		producer = kafka.NewConsoleProducer()
	}
	auditManager := server.NewAuditManager(2, 5, 500*time.Millisecond, producer)

	srv := server.New(cache, actionService, auditManager)

	go func() {
		if err := srv.Run(ctx, cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Port)

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
