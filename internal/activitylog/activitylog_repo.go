package activitylog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=activitylog_repo.go -destination=mock/activitylog_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *ActivityLog) error
	FindRecent(ctx context.Context, limit int) ([]ActivityLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]ActivityLog, error) {
	var rows []ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&ActivityLog{})
	return res.RowsAffected, res.Error
}
