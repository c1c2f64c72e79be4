package activitylog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry adalah satu aktivitas HTTP yang akan dicatat.
type Entry struct {
	UserID     string
	Method     string
	Path       string
	StatusCode int
	IPAddress  string
	UserAgent  string
	RequestID  string
}

//go:generate mockgen -source=activitylog_service.go -destination=mock/activitylog_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, entry Entry)
	ListRecent(ctx context.Context, limit int) ([]ActivityLogResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("activitylog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.service")
	}
	return &service{
		repo:   repo,
		logger: l,
		now:    time.Now,
	}
}

// Record menulis satu entry secara best-effort: kegagalan dicatat di log
// aplikasi tapi tidak pernah menggagalkan request yang memicunya.
func (s *service) Record(ctx context.Context, entry Entry) {
	rec := &ActivityLog{
		ID:         uuid.New(),
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
		Device:     ClassifyDevice(entry.UserAgent),
		RequestID:  entry.RequestID,
		CreatedAt:  s.now(),
	}
	if uid, err := uuid.Parse(entry.UserID); err == nil {
		rec.UserID = &uid
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Warn("record activity failed",
			zap.String("path", entry.Path),
			zap.Error(err),
		)
		return
	}

	s.sweep(ctx)
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]ActivityLogResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]ActivityLogResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToLogResponse(row)
	}
	return res, nil
}

// sweep menghapus entry di luar jendela retensi. Berjalan pada setiap
// write sukses supaya log selalu berupa jendela bergulir 3 hari, bukan
// arsip permanen.
func (s *service) sweep(ctx context.Context) {
	cutoff := s.now().AddDate(0, 0, -RetentionDays)
	removed, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Warn("activity log retention sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("activity log retention sweep",
			zap.Int64("removed", removed),
			zap.Time("cutoff", cutoff),
		)
	}
}

func mapToLogResponse(row ActivityLog) ActivityLogResponse {
	resp := ActivityLogResponse{
		ID:         row.ID.String(),
		Method:     row.Method,
		Path:       row.Path,
		StatusCode: row.StatusCode,
		IPAddress:  row.IPAddress,
		Device:     row.Device,
		RequestID:  row.RequestID,
		CreatedAt:  row.CreatedAt.Format(time.RFC3339),
	}
	if row.UserID != nil {
		v := row.UserID.String()
		resp.UserID = &v
	}
	return resp
}
