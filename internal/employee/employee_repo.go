package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Employee{}).Error
}
