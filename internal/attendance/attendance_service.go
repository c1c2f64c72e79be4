package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "go-presensi/internal/attendance/errors"
	"go-presensi/internal/config"
	"go-presensi/internal/employee"
	"go-presensi/internal/events"
	"go-presensi/internal/geofence"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/schedule"
	"go-presensi/internal/shift"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScheduleResolver adalah seam ke modul schedule: menentukan shift final
// (override atau rotasi) untuk satu karyawan pada satu tanggal kerja.
type ScheduleResolver interface {
	ResolveFor(ctx context.Context, employeeID string, date time.Time) (schedule.ResolvedDay, error)
}

// EmployeeLister menyediakan daftar karyawan untuk penandaan absen harian.
type EmployeeLister interface {
	FindAll(ctx context.Context) ([]employee.Employee, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	Correct(ctx context.Context, id string, req CorrectionRequest) (AttendanceResponse, error)
	MarkAbsences(ctx context.Context, workDate time.Time) (int, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	ListAll(ctx context.Context) ([]AttendanceResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	scheduler ScheduleResolver
	employees EmployeeLister
	outbox    kafka.OutboxRepository
	office    config.OfficeConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	scheduler ScheduleResolver,
	employees EmployeeLister,
	outbox kafka.OutboxRepository,
	office config.OfficeConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if office.Timezone == nil {
		office.Timezone = time.UTC
	}
	return &service{
		db:        db,
		repo:      repo,
		scheduler: scheduler,
		employees: employees,
		outbox:    outbox,
		office:    office,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if err := s.checkGeofence(req.Latitude, req.Longitude); err != nil {
		return AttendanceResponse{}, err
	}

	now := s.now().In(s.office.Timezone)
	workDate := midnight(now)

	day, err := s.scheduler.ResolveFor(ctx, employeeID, workDate)
	if err != nil {
		return AttendanceResponse{}, err
	}

	eval, err := Evaluate(now, nil, ScheduledShift{Code: day.Code, Start: day.Start, End: day.End})
	if err != nil {
		if errors.Is(err, ErrMissingSchedule) {
			return AttendanceResponse{}, attendanceerrors.ErrMissingSchedule
		}
		return AttendanceResponse{}, err
	}

	rec := &Attendance{
		ID:          uuid.New(),
		EmployeeID:  empUUID,
		WorkDate:    workDate,
		ShiftCode:   string(day.Code),
		ClockIn:     &now,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      string(eval.Status),
		LateMinutes: eval.LateMinutes,
		EvidenceURL: req.EvidenceURL,
		Notes:       req.Notes,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, rec); err != nil {
		if isUniqueViolation(err) {
			// unique index (employee_id, work_date) adalah satu-satunya
			// penjaga duplikasi; race antar request jatuh ke sini
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
		}
		s.logger.Error("clock-in persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := s.publishRecorded(ctx, tx, rec, events.AttendanceClockInEvent); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("shift_code", rec.ShiftCode),
		zap.String("status", rec.Status),
		zap.Int("late_minutes", rec.LateMinutes),
	)
	return mapToAttendanceResponse(*rec), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if err := s.checkGeofence(req.Latitude, req.Longitude); err != nil {
		return AttendanceResponse{}, err
	}

	now := s.now().In(s.office.Timezone)
	today := midnight(now)

	// shift malam di-clock-out keesokan harinya, jadi record terbuka bisa
	// tercatat pada tanggal kemarin
	rec, err := s.repo.FindOpenByEmployee(ctx, employeeID, []time.Time{today, today.AddDate(0, 0, -1)})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, s.classifyMissingOpen(ctx, employeeID, today)
		}
		return AttendanceResponse{}, err
	}

	day, err := s.scheduler.ResolveFor(ctx, employeeID, rec.WorkDate)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if day.Code != shift.CodeOff {
		if !CanClockOut(now, day.End) {
			return AttendanceResponse{}, attendanceerrors.ErrClockOutTooEarly
		}
	}

	eval, err := Evaluate(*rec.ClockIn, &now, ScheduledShift{Code: day.Code, Start: day.Start, End: day.End})
	if err != nil {
		if errors.Is(err, ErrMissingSchedule) {
			return AttendanceResponse{}, attendanceerrors.ErrMissingSchedule
		}
		return AttendanceResponse{}, err
	}

	rec.ClockOut = &now
	rec.Status = string(eval.Status)
	rec.LateMinutes = eval.LateMinutes
	rec.EarlyLeaveMinutes = eval.EarlyLeaveMinutes
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, rec); err != nil {
		s.logger.Error("clock-out persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := s.publishRecorded(ctx, tx, rec, events.AttendanceClockOutEvent); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock-out recorded",
		zap.String("employee_id", employeeID),
		zap.String("status", rec.Status),
		zap.Int("early_leave_minutes", rec.EarlyLeaveMinutes),
	)
	return mapToAttendanceResponse(*rec), nil
}

// classifyMissingOpen membedakan "sudah pulang" dari "belum pernah masuk"
// supaya pesan error ke user tidak menyesatkan.
func (s *service) classifyMissingOpen(ctx context.Context, employeeID string, today time.Time) error {
	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err == nil && existing.ClockOut != nil {
		return attendanceerrors.ErrAlreadyClockedOut
	}
	return attendanceerrors.ErrNoOpenAttendance
}

func (s *service) Correct(ctx context.Context, id string, req CorrectionRequest) (AttendanceResponse, error) {
	status := Status(req.Status)
	switch status {
	case StatusPermit, StatusSick, StatusLeave, StatusAlpha:
	default:
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCorrectionStatus
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	rec.Status = string(status)
	rec.LateMinutes = 0
	rec.EarlyLeaveMinutes = 0
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, rec); err != nil {
		return AttendanceResponse{}, err
	}
	if err := s.publishRecorded(ctx, tx, rec, events.AttendanceCorrectedEvent); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance corrected",
		zap.String("attendance_id", id),
		zap.String("status", rec.Status),
	)
	return mapToAttendanceResponse(*rec), nil
}

// MarkAbsences mencatat ALPHA untuk setiap karyawan yang terjadwal kerja
// pada tanggal tersebut tapi tidak pernah clock-in. Dipanggil worker
// setelah seluruh shift hari itu tutup, supaya hari bolos masuk ke rekap
// dengan skor 0 dan tidak hilang begitu saja.
func (s *service) MarkAbsences(ctx context.Context, workDate time.Time) (int, error) {
	date := midnight(workDate.In(s.office.Timezone))

	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, emp := range emps {
		if !emp.Active {
			continue
		}

		day, err := s.scheduler.ResolveFor(ctx, emp.ID.String(), date)
		if err != nil {
			s.logger.Warn("resolve shift for absence marking failed",
				zap.String("employee_id", emp.ID.String()),
				zap.String("work_date", date.Format("2006-01-02")),
				zap.Error(err),
			)
			continue
		}
		if day.Code == shift.CodeOff {
			continue
		}

		_, err = s.repo.FindByEmployeeAndDate(ctx, emp.ID.String(), date)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return marked, err
		}

		if err := s.createAbsence(ctx, emp.ID, date, string(day.Code)); err != nil {
			if isUniqueViolation(err) {
				// balapan dengan koreksi admin untuk hari yang sama
				continue
			}
			return marked, err
		}
		marked++
	}

	if marked > 0 {
		s.logger.Info("absences marked",
			zap.Int("count", marked),
			zap.String("work_date", date.Format("2006-01-02")),
		)
	}
	return marked, nil
}

func (s *service) createAbsence(ctx context.Context, employeeID uuid.UUID, date time.Time, shiftCode string) error {
	rec := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		WorkDate:   date,
		ShiftCode:  shiftCode,
		Status:     string(StatusAlpha),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, rec); err != nil {
		return err
	}
	if err := s.publishRecorded(ctx, tx, rec, events.AttendanceAbsentEvent); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}
	return mapToAttendanceResponse(*rec), nil
}

func (s *service) ListAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, rec := range rows {
		res[i] = mapToAttendanceResponse(rec)
	}
	return res, nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, rec := range rows {
		res[i] = mapToAttendanceResponse(rec)
	}
	return res, nil
}

func (s *service) checkGeofence(lat, lon *float64) error {
	if lat == nil || lon == nil {
		return attendanceerrors.ErrLocationRequired
	}
	if !geofence.WithinRadius(*lat, *lon, s.office.Latitude, s.office.Longitude, s.office.RadiusMeters) {
		return attendanceerrors.ErrOutsideGeofence
	}
	return nil
}

func (s *service) publishRecorded(ctx context.Context, tx *sql.Tx, rec *Attendance, eventType string) error {
	if s.outbox == nil {
		return nil
	}
	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventType:         eventType,
		AttendanceID:      rec.ID.String(),
		EmployeeID:        rec.EmployeeID.String(),
		WorkDate:          rec.WorkDate.Format("2006-01-02"),
		ShiftCode:         rec.ShiftCode,
		Status:            rec.Status,
		LateMinutes:       rec.LateMinutes,
		EarlyLeaveMinutes: rec.EarlyLeaveMinutes,
		Score:             Score(Status(rec.Status), rec.LateMinutes, rec.EarlyLeaveMinutes),
		OccurredAt:        s.now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "attendance",
		AggregateID:   rec.ID.String(),
		EventType:     eventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToAttendanceResponse(rec Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                rec.ID.String(),
		EmployeeID:        rec.EmployeeID.String(),
		WorkDate:          rec.WorkDate.Format("2006-01-02"),
		ShiftCode:         rec.ShiftCode,
		Latitude:          rec.Latitude,
		Longitude:         rec.Longitude,
		Status:            rec.Status,
		LateMinutes:       rec.LateMinutes,
		EarlyLeaveMinutes: rec.EarlyLeaveMinutes,
		Score:             Score(Status(rec.Status), rec.LateMinutes, rec.EarlyLeaveMinutes),
		EvidenceURL:       rec.EvidenceURL,
		Notes:             rec.Notes,
	}
	if rec.ClockIn != nil {
		v := rec.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if rec.ClockOut != nil {
		v := rec.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if rec.Employee != nil {
		resp.EmployeeName = rec.Employee.FullName
	}
	return resp
}
