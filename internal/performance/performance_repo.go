package performance

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecapRow struct {
	EmployeeID   string
	EmployeeName string
	Days         int
	AverageScore float64
}

//go:generate mockgen -source=performance_repo.go -destination=mock/performance_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, s *DailySummary) error
	FindByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]DailySummary, error)
	RecapRange(ctx context.Context, from, to time.Time) ([]RecapRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, s *DailySummary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "score", "updated_at"}),
		}).
		Create(s).Error
}

func (r *repository) FindByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]DailySummary, error) {
	var rows []DailySummary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) RecapRange(ctx context.Context, from, to time.Time) ([]RecapRow, error) {
	var rows []RecapRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.employee_id::text AS employee_id,
			e.full_name AS employee_name,
			COUNT(*) AS days,
			ROUND(AVG(s.score), 2) AS average_score
		FROM performance_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.work_date BETWEEN ? AND ?
		GROUP BY s.employee_id, e.full_name
		ORDER BY average_score DESC
	`, from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(&rows).Error
	return rows, err
}
