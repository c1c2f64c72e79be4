package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAll(ctx context.Context, status string) ([]Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	CountOverlapping(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
	Update(ctx context.Context, l *Leave) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang seluruh query-nya berjalan di atas
// transaksi yang diberikan, bukan pool koneksi utama.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Leave, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []Leave
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountOverlapping menghitung pengajuan aktif (PENDING/APPROVED) yang
// rentangnya beririsan dengan [start, end].
func (r *repository) CountOverlapping(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end.Format("2006-01-02"), start.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}
