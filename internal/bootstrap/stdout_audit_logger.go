package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StdoutAuditLogger mencatat jejak siklus hidup proses (start/stop server)
// ke log aplikasi. Audit aksi user per-request ditangani modul activitylog.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("presensi.audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info(entry.Message,
		zap.String("action", entry.Action),
		zap.Time("at", time.Now().UTC()),
		zap.Any("meta", entry.Meta),
	)
}
