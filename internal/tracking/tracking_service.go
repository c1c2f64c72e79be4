package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-presensi/internal/config"
	"go-presensi/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "tracking:last:"

var errInvalidEmployeeID = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid employee ID",
	http.StatusBadRequest,
)

//go:generate mockgen -source=tracking_service.go -destination=mock/tracking_service_mock.go -package=mock
type Service interface {
	Ping(ctx context.Context, employeeID string, req PingRequest) (PingResponse, error)
	ListLastLocations(ctx context.Context) ([]LastLocation, error)
}

type service struct {
	rdb    *redis.Client
	cfg    config.TrackingConfig
	logger *zap.Logger
	now    func() time.Time
}

func NewService(rdb *redis.Client, cfg config.TrackingConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("tracking.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tracking.service")
	}
	return &service{
		rdb:    rdb,
		cfg:    cfg,
		logger: l,
		now:    time.Now,
	}
}

// Ping menyimpan posisi terakhir karyawan dengan TTL. Saat tracking
// dimatikan lewat config, ping diterima tapi tidak disimpan supaya klien
// lama tidak error.
func (s *service) Ping(ctx context.Context, employeeID string, req PingRequest) (PingResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PingResponse{}, errInvalidEmployeeID
	}
	if !s.cfg.Required {
		return PingResponse{Recorded: false}, nil
	}

	now := s.now().UTC()
	loc := LastLocation{
		EmployeeID: employeeID,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		RecordedAt: now.Format(time.RFC3339),
	}
	payload, err := json.Marshal(loc)
	if err != nil {
		return PingResponse{}, err
	}

	if err := s.rdb.Set(ctx, keyPrefix+employeeID, payload, s.cfg.TTL).Err(); err != nil {
		s.logger.Warn("store tracking ping failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PingResponse{}, err
	}

	return PingResponse{Recorded: true, RecordedAt: loc.RecordedAt}, nil
}

func (s *service) ListLastLocations(ctx context.Context) ([]LastLocation, error) {
	var (
		cursor    uint64
		locations []LastLocation
	)
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan tracking keys: %w", err)
		}

		for _, key := range keys {
			raw, err := s.rdb.Get(ctx, key).Result()
			if err != nil {
				// key bisa kedaluwarsa di antara SCAN dan GET
				continue
			}
			var loc LastLocation
			if err := json.Unmarshal([]byte(raw), &loc); err != nil {
				s.logger.Warn("corrupt tracking payload", zap.String("key", key), zap.Error(err))
				continue
			}
			locations = append(locations, loc)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}
	return locations, nil
}
