package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/pickmate/fulfillment-api/internal/logger"
	"github.com/pickmate/fulfillment-api/internal/repository"
)

const (
	defaultBrokers = "localhost:9092"
	kafkaTopic     = "audit_logs"
	groupID        = "audit-log-consumer-group"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = defaultBrokers
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          kafkaTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("error closing reader", zap.Error(err))
		}
	}()

	log.Info("consumer connected", zap.String("topic", kafkaTopic), zap.String("brokers", brokers))

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received, stopping consumer")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("error reading message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			var payload repository.AuditLogPayload
			if err := json.Unmarshal(m.Value, &payload); err != nil {
				log.Warn("skipping malformed audit payload",
					zap.Int64("offset", m.Offset),
					zap.Error(err))
				continue
			}

			log.Info("audit event",
				zap.Time("timestamp", payload.Timestamp),
				zap.String("handler", payload.Handler),
				zap.String("method", payload.Method),
				zap.String("path", payload.Path),
				zap.Int("status", payload.StatusCode),
				zap.String("user_id", payload.UserID),
				zap.String("entity_type", payload.EntityType),
				zap.String("entity_id", payload.EntityID),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset))
		}
	}
}
