package performance

import (
	"context"
	"fmt"
	"time"

	"go-presensi/internal/events"
	"go-presensi/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=performance_service.go -destination=mock/performance_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, event events.AttendanceRecordedEvent) error
	MonthlyRecap(ctx context.Context, year int, month time.Month) ([]RecapResponse, error)
	EmployeeHistory(ctx context.Context, employeeID string, year int, month time.Month) ([]DailySummaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	return &service{repo: repo, logger: l}
}

// Apply memproyeksikan satu event kehadiran menjadi ringkasan harian.
// Idempoten: event yang sama di-upsert ke baris (employee, date) yang sama.
func (s *service) Apply(ctx context.Context, event events.AttendanceRecordedEvent) error {
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return fmt.Errorf("invalid employee id in event: %w", err)
	}
	workDate, err := time.Parse("2006-01-02", event.WorkDate)
	if err != nil {
		return fmt.Errorf("invalid work date in event: %w", err)
	}

	summary := &DailySummary{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		WorkDate:   workDate,
		Status:     event.Status,
		Score:      event.Score,
	}
	if err := s.repo.Upsert(ctx, summary); err != nil {
		return err
	}

	s.logger.Debug("daily summary applied",
		zap.String("employee_id", event.EmployeeID),
		zap.String("work_date", event.WorkDate),
		zap.Int("score", event.Score),
	)
	return nil
}

func (s *service) MonthlyRecap(ctx context.Context, year int, month time.Month) ([]RecapResponse, error) {
	from, to, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.RecapRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	res := make([]RecapResponse, len(rows))
	for i, r := range rows {
		res[i] = RecapResponse{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			Days:         r.Days,
			AverageScore: r.AverageScore,
		}
	}
	return res, nil
}

func (s *service) EmployeeHistory(ctx context.Context, employeeID string, year int, month time.Month) ([]DailySummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "Invalid employee ID", 400)
	}
	from, to, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	res := make([]DailySummaryResponse, len(rows))
	for i, r := range rows {
		res[i] = DailySummaryResponse{
			EmployeeID: r.EmployeeID.String(),
			WorkDate:   r.WorkDate.Format("2006-01-02"),
			Status:     r.Status,
			Score:      r.Score,
		}
	}
	return res, nil
}

func monthRange(year int, month time.Month) (time.Time, time.Time, error) {
	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		return time.Time{}, time.Time{}, apperror.New(apperror.CodeInvalidInput, "Invalid year or month", 400)
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}
