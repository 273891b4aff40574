package audit

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const Topic = "hr.audit"

type kafkaEvent struct {
	Action     string         `json:"action"`
	Actor      string         `json:"actor,omitempty"`
	Message    string         `json:"message"`
	Meta       map[string]any `json:"meta,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type KafkaLogger struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewKafkaLogger(brokers string) *KafkaLogger {
	writer := &kafkago.Writer{
		Addr:     kafkago.TCP(strings.Split(brokers, ",")...),
		Topic:    Topic,
		Balancer: &kafkago.LeastBytes{},
	}
	return &KafkaLogger{
		writer: writer,
		logger: zap.L().Named("audit.kafka"),
	}
}

// Log mengirim event ke broker. Kegagalan publish tidak boleh menggagalkan
// request yang memicunya, jadi hanya dicatat ke log aplikasi.
func (l *KafkaLogger) Log(ctx context.Context, entry AuditLog) {
	payload, err := json.Marshal(kafkaEvent{
		Action:     entry.Action,
		Actor:      entry.Actor,
		Message:    entry.Message,
		Meta:       entry.Meta,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		l.logger.Error("marshal audit event failed", zap.Error(err))
		return
	}

	msg := kafkago.Message{
		Key:   []byte(entry.Action),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "action", Value: []byte(entry.Action)},
		},
	}

	if err := l.writer.WriteMessages(ctx, msg); err != nil {
		l.logger.Error("publish audit event failed",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}

func (l *KafkaLogger) Close() error {
	return l.writer.Close()
}
