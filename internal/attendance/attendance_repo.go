package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindOpenByEmployee(ctx context.Context, employeeID string, dates []time.Time) (*Attendance, error)
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

// FindOpenByEmployee mencari record yang belum clock-out pada salah satu
// tanggal kerja yang diberikan (hari ini, atau kemarin untuk shift malam).
func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string, dates []time.Time) (*Attendance, error) {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format("2006-01-02")
	}

	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date IN ?", formatted).
		Where("clock_in IS NOT NULL").
		Where("clock_out IS NULL").
		Order("work_date DESC").
		First(&a).Error
	return &a, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("work_date DESC, clock_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("work_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
