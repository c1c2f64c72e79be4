package schedule

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, o *Override) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Override, error)
	FindByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Override, error)
	Delete(ctx context.Context, employeeID string, date time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, o *Override) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"shift_code", "reason", "created_by", "updated_at"}),
		}).
		Create(o).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Override, error) {
	var o Override
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&o).Error
	return &o, err
}

func (r *repository) FindByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Override, error) {
	var rows []Override
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, employeeID string, date time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		Delete(&Override{})
	return res.RowsAffected, res.Error
}
