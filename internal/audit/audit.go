// Package audit mencatat jejak aksi penting (login, mutasi data, shutdown)
// ke stdout atau ke topik Kafka bila broker dikonfigurasi.
package audit

import "context"

type AuditLog struct {
	Action  string
	Actor   string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry AuditLog)
}
