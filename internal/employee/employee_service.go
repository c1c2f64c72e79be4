package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "go-presensi/internal/employee/errors"
	"go-presensi/internal/events"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/shared/contextutil"
	"go-presensi/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const employeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("full_name", req.FullName),
	)

	if req.RotationOffset == nil || *req.RotationOffset < 0 || *req.RotationOffset > 4 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRotationOffset
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	number := req.EmployeeNumber
	if number == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		number = fmt.Sprintf("EMP-%05d", nextVal)
	}

	role := req.Role
	if role == "" {
		role = "EMPLOYEE"
	}

	e := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: number,
		FullName:       req.FullName,
		Position:       req.Position,
		RotationOffset: *req.RotationOffset,
		Role:           role,
		Active:         true,
	}

	if err := qtx.Create(ctx, e); err != nil {
		if isUniqueViolation(err) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNumberAlreadyExists
		}
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.EmployeeCreatedEvent{
			EventType:  "employee.created",
			EmployeeID: e.ID.String(),
			Username:   e.EmployeeNumber,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return EmployeeResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			AggregateType: "employee",
			AggregateID:   e.ID.String(),
			EventType:     "employee.created",
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("create employee outbox failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// GetOptions membaca daftar ringkas karyawan dari cache; miss yang
// bersamaan digabungkan lewat singleflight supaya DB hanya dipukul sekali.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(employeeOptionsKey, func() (any, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, employeeOptionsKey, payload, 30*time.Minute).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.RotationOffset != nil && (*req.RotationOffset < 0 || *req.RotationOffset > 4) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRotationOffset
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.FullName != "" {
		e.FullName = req.FullName
	}
	if req.Position != "" {
		e.Position = req.Position
	}
	if req.RotationOffset != nil {
		e.RotationOffset = *req.RotationOffset
	}
	if req.Role != "" {
		e.Role = req.Role
	}
	if req.Active != nil {
		e.Active = *req.Active
	}

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	// Soft delete; riwayat absensi karyawan tidak ikut terhapus.
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateOptionsCache(ctx)
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed", zap.Error(err))
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName,
		Position:       e.Position,
		RotationOffset: e.RotationOffset,
		Role:           e.Role,
		Active:         e.Active,
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
