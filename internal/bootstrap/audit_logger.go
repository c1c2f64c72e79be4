package bootstrap

import "context"

// AuditLog adalah kejadian level aplikasi (start, shutdown, kegagalan
// dependency) yang wajib tercatat terlepas dari sink log utama.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
