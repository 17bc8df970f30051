package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// WriterProducer sends messages through a shared kafka-go writer. The
// topic comes per message so one writer serves every outbox topic.
type WriterProducer struct {
	writer *kafka.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer logs messages instead of sending them; used when no
// broker is configured (local development).
type ConsoleProducer struct{}

func NewConsoleProducer() Producer {
	zap.L().Info("initialized console producer, messages will be logged only")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-time.After(50 * time.Millisecond):
		zap.L().Info("console producer message",
			zap.String("topic", topic),
			zap.ByteString("key", key),
			zap.ByteString("value", value))
		return nil
	case <-ctx.Done():
		zap.L().Warn("console producer send cancelled",
			zap.String("topic", topic),
			zap.ByteString("key", key))
		return ctx.Err()
	}
}

func (p *ConsoleProducer) Close() error {
	return nil
}
