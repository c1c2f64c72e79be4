package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-presensi/internal/attendance"
	"go-presensi/internal/events"
	leaveerrors "go-presensi/internal/leave/errors"
	"go-presensi/internal/messaging/kafka"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxLeaveDays = 30

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id, deciderID string, req DecideLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, id, deciderID string, req DecideLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, id, employeeID string) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListAll(ctx context.Context, status string) ([]LeaveResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	attRepo   attendance.Repository
	scheduler attendance.ScheduleResolver
	outbox    kafka.OutboxRepository
	location  *time.Location
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	attRepo attendance.Repository,
	scheduler attendance.ScheduleResolver,
	outbox kafka.OutboxRepository,
	location *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if location == nil {
		location = time.UTC
	}
	return &service{
		db:        db,
		repo:      repo,
		attRepo:   attRepo,
		scheduler: scheduler,
		outbox:    outbox,
		location:  location,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, s.location)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if end.Sub(start) > maxLeaveDays*24*time.Hour {
		return LeaveResponse{}, leaveerrors.ErrRangeTooLong
	}

	overlap, err := s.repo.CountOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap > 0 {
		return LeaveResponse{}, leaveerrors.ErrOverlappingLeave
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: empUUID,
		Type:       req.Type,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave submitted",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("type", l.Type),
	)
	return mapToLeaveResponse(*l), nil
}

// Approve memutuskan pengajuan dan menstempel seluruh hari dalam rentang
// ke tabel attendance dalam satu transaksi, supaya rekap skor langsung
// mencerminkan izin yang disetujui.
func (s *service) Approve(ctx context.Context, id, deciderID string, req DecideLeaveRequest) (LeaveResponse, error) {
	l, err := s.findPending(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	s.decide(l, StatusApproved, deciderID, req.Notes)
	if err := s.repo.WithTx(tx).Update(ctx, l); err != nil {
		return LeaveResponse{}, err
	}
	if err := s.stampAttendance(ctx, tx, l); err != nil {
		s.logger.Error("stamp attendance for leave failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave approved",
		zap.String("leave_id", id),
		zap.String("decided_by", deciderID),
	)
	return mapToLeaveResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, id, deciderID string, req DecideLeaveRequest) (LeaveResponse, error) {
	l, err := s.findPending(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	s.decide(l, StatusRejected, deciderID, req.Notes)
	if err := s.repo.Update(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave rejected",
		zap.String("leave_id", id),
		zap.String("decided_by", deciderID),
	)
	return mapToLeaveResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, id, employeeID string) (LeaveResponse, error) {
	l, err := s.findPending(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != employeeID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}

	l.Status = StatusCanceled
	if err := s.repo.Update(ctx, l); err != nil {
		return LeaveResponse{}, err
	}
	return mapToLeaveResponse(*l), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToLeaveListResponse(rows), nil
}

func (s *service) ListAll(ctx context.Context, status string) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapToLeaveListResponse(rows), nil
}

func (s *service) findPending(ctx context.Context, id string) (*Leave, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	if l.Status != StatusPending {
		return nil, leaveerrors.ErrAlreadyDecided
	}
	return l, nil
}

func (s *service) decide(l *Leave, status, deciderID, notes string) {
	now := s.now().In(s.location)
	l.Status = status
	l.DecidedAt = &now
	if notes != "" {
		l.DecisionNotes = &notes
	}
	if decider, err := uuid.Parse(deciderID); err == nil {
		l.DecidedBy = &decider
	}
}

func (s *service) stampAttendance(ctx context.Context, tx *sql.Tx, l *Leave) error {
	attTx := s.attRepo.WithTx(tx)
	employeeID := l.EmployeeID.String()

	for d := l.StartDate; !d.After(l.EndDate); d = d.AddDate(0, 0, 1) {
		existing, err := attTx.FindByEmployeeAndDate(ctx, employeeID, d)
		switch {
		case err == nil:
			existing.Status = l.Type
			existing.LateMinutes = 0
			existing.EarlyLeaveMinutes = 0
			if err := attTx.Update(ctx, existing); err != nil {
				return err
			}
			if err := s.publishStamp(ctx, tx, existing); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			shiftCode := "OFF"
			if day, rerr := s.scheduler.ResolveFor(ctx, employeeID, d); rerr == nil {
				shiftCode = string(day.Code)
			} else {
				s.logger.Warn("resolve shift for leave stamp failed, defaulting to OFF",
					zap.String("leave_id", l.ID.String()),
					zap.String("employee_id", employeeID),
					zap.String("work_date", d.Format("2006-01-02")),
					zap.Error(rerr),
				)
			}
			rec := &attendance.Attendance{
				ID:         uuid.New(),
				EmployeeID: l.EmployeeID,
				WorkDate:   d,
				ShiftCode:  shiftCode,
				Status:     l.Type,
			}
			if err := attTx.Create(ctx, rec); err != nil {
				return err
			}
			if err := s.publishStamp(ctx, tx, rec); err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

func (s *service) publishStamp(ctx context.Context, tx *sql.Tx, rec *attendance.Attendance) error {
	if s.outbox == nil {
		return nil
	}
	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventType:    events.AttendanceCorrectedEvent,
		AttendanceID: rec.ID.String(),
		EmployeeID:   rec.EmployeeID.String(),
		WorkDate:     rec.WorkDate.Format("2006-01-02"),
		ShiftCode:    rec.ShiftCode,
		Status:       rec.Status,
		Score:        attendance.Score(attendance.Status(rec.Status), 0, 0),
		OccurredAt:   s.now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "attendance",
		AggregateID:   rec.ID.String(),
		EventType:     events.AttendanceCorrectedEvent,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToLeaveResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		EmployeeID:    l.EmployeeID.String(),
		Type:          l.Type,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		Reason:        l.Reason,
		Status:        l.Status,
		DecisionNotes: l.DecisionNotes,
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToLeaveListResponse(rows []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		res[i] = mapToLeaveResponse(l)
	}
	return res
}
