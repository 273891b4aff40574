package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type StdoutLogger struct{}

func NewStdoutLogger() *StdoutLogger {
	return &StdoutLogger{}
}

func (l *StdoutLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("actor", entry.Actor),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
