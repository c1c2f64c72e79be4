package schedule

import (
	"context"
	"errors"
	"time"

	"go-presensi/internal/employee"
	scheduleerrors "go-presensi/internal/schedule/errors"
	"go-presensi/internal/shift"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	SourceRotation = "ROTATION"
	SourceOverride = "OVERRIDE"
)

// maxRangeDays membatasi query jadwal per request supaya resolver tidak
// dipakai menarik jadwal bertahun-tahun sekaligus.
const maxRangeDays = 62

// ResolvedDay adalah hasil akhir penentuan shift satu karyawan untuk satu
// tanggal: override bila ada, selain itu rotasi 5 harian.
type ResolvedDay struct {
	Date   time.Time
	Code   shift.Code
	Start  time.Time
	End    time.Time
	Source string
	Reason string
}

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	ResolveFor(ctx context.Context, employeeID string, date time.Time) (ResolvedDay, error)
	RangeFor(ctx context.Context, employeeID string, from, to time.Time) ([]DayScheduleResponse, error)
	SetOverride(ctx context.Context, req SetOverrideRequest, createdBy string) (DayScheduleResponse, error)
	DeleteOverride(ctx context.Context, employeeID string, date time.Time) error
}

type service struct {
	repo     Repository
	empRepo  employee.Repository
	location *time.Location
	logger   *zap.Logger
}

func NewService(repo Repository, empRepo employee.Repository, location *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	if location == nil {
		location = time.UTC
	}
	return &service{
		repo:     repo,
		empRepo:  empRepo,
		location: location,
		logger:   l,
	}
}

func (s *service) ResolveFor(ctx context.Context, employeeID string, date time.Time) (ResolvedDay, error) {
	ov, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ResolvedDay{}, err
	}
	if err == nil {
		return s.materialize(date, shift.Code(ov.ShiftCode), SourceOverride, ov.Reason)
	}

	emp, err := s.empRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResolvedDay{}, scheduleerrors.ErrEmployeeNotFound
		}
		return ResolvedDay{}, err
	}

	code, err := shift.Resolve(date, emp.RotationOffset)
	if err != nil {
		return ResolvedDay{}, err
	}
	return s.materialize(date, code, SourceRotation, "")
}

func (s *service) RangeFor(ctx context.Context, employeeID string, from, to time.Time) ([]DayScheduleResponse, error) {
	if to.Before(from) || to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, scheduleerrors.ErrInvalidDateRange
	}

	emp, err := s.empRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduleerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	overrides, err := s.repo.FindByEmployeeInRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]Override, len(overrides))
	for _, o := range overrides {
		byDate[o.WorkDate.Format("2006-01-02")] = o
	}

	var days []DayScheduleResponse
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		var day ResolvedDay
		if ov, ok := byDate[d.Format("2006-01-02")]; ok {
			day, err = s.materialize(d, shift.Code(ov.ShiftCode), SourceOverride, ov.Reason)
		} else {
			var code shift.Code
			code, err = shift.Resolve(d, emp.RotationOffset)
			if err == nil {
				day, err = s.materialize(d, code, SourceRotation, "")
			}
		}
		if err != nil {
			return nil, err
		}
		days = append(days, mapDayToResponse(day))
	}
	return days, nil
}

func (s *service) SetOverride(ctx context.Context, req SetOverrideRequest, createdBy string) (DayScheduleResponse, error) {
	code := shift.Code(req.ShiftCode)
	if !code.Valid() {
		return DayScheduleResponse{}, scheduleerrors.ErrInvalidShiftCode
	}
	date, err := time.ParseInLocation("2006-01-02", req.WorkDate, s.location)
	if err != nil {
		return DayScheduleResponse{}, scheduleerrors.ErrInvalidDateRange
	}

	if _, err := s.empRepo.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DayScheduleResponse{}, scheduleerrors.ErrEmployeeNotFound
		}
		return DayScheduleResponse{}, err
	}

	o := &Override{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		WorkDate:   date,
		ShiftCode:  req.ShiftCode,
		Reason:     req.Reason,
	}
	if actor, err := uuid.Parse(createdBy); err == nil {
		o.CreatedBy = actor
	}

	if err := s.repo.Upsert(ctx, o); err != nil {
		s.logger.Error("upsert schedule override failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return DayScheduleResponse{}, err
	}

	s.logger.Info("schedule override set",
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", req.WorkDate),
		zap.String("shift_code", req.ShiftCode),
	)

	day, err := s.materialize(date, code, SourceOverride, req.Reason)
	if err != nil {
		return DayScheduleResponse{}, err
	}
	return mapDayToResponse(day), nil
}

func (s *service) DeleteOverride(ctx context.Context, employeeID string, date time.Time) error {
	affected, err := s.repo.Delete(ctx, employeeID, date)
	if err != nil {
		return err
	}
	if affected == 0 {
		return scheduleerrors.ErrOverrideNotFound
	}
	return nil
}

// materialize melengkapi kode shift dengan jam masuk/pulang pada timezone
// kantor. Hari OFF tidak punya jendela jam.
func (s *service) materialize(date time.Time, code shift.Code, source, reason string) (ResolvedDay, error) {
	day := ResolvedDay{Date: date, Code: code, Source: source, Reason: reason}
	if code == shift.CodeOff {
		return day, nil
	}
	start, end, err := shift.ScheduledWindow(date, code, s.location)
	if err != nil {
		return ResolvedDay{}, err
	}
	day.Start = start
	day.End = end
	return day, nil
}

func mapDayToResponse(d ResolvedDay) DayScheduleResponse {
	resp := DayScheduleResponse{
		Date:      d.Date.Format("2006-01-02"),
		ShiftCode: string(d.Code),
		Source:    d.Source,
		Reason:    d.Reason,
	}
	if !d.Start.IsZero() {
		resp.Start = d.Start.Format(time.RFC3339)
		resp.End = d.End.Format(time.RFC3339)
	}
	return resp
}
