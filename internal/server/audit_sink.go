package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pickmate/fulfillment-api/internal/db"
	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

// OutboxAuditSink persists audit batches as outbox tasks; the kafka
// publisher picks them up from there.
type OutboxAuditSink struct {
	db    db.DB
	tasks storage.OutboxTaskRepository
	topic string
}

func NewOutboxAuditSink(database db.DB, tasks storage.OutboxTaskRepository, topic string) *OutboxAuditSink {
	return &OutboxAuditSink{
		db:    database,
		tasks: tasks,
		topic: topic,
	}
}

func (s *OutboxAuditSink) Persist(ctx context.Context, batch []AuditLogEntry) error {
	for _, entry := range batch {
		payload, err := json.Marshal(repository.AuditLogPayload{
			Timestamp:  entry.Timestamp,
			UserID:     entry.UserID,
			Method:     entry.Method,
			Path:       entry.Path,
			Handler:    entry.Handler,
			StatusCode: entry.StatusCode,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Request:    entry.Request,
			Response:   entry.Response,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal audit payload: %w", err)
		}

		task := &repository.OutboxTask{
			Payload: payload,
			Topic:   s.topic,
		}
		if err := s.tasks.Create(ctx, s.db, task); err != nil {
			return err
		}
	}
	return nil
}
