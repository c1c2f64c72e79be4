package tracking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-presensi/internal/config"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestService_Ping(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	cfg := config.TrackingConfig{Required: true, TTL: 15 * time.Minute}

	svc := NewService(rdb, cfg).(*service)
	base := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	empID := uuid.NewString()

	t.Run("ping tersimpan dengan TTL", func(t *testing.T) {
		expected, err := json.Marshal(LastLocation{
			EmployeeID: empID,
			Latitude:   -6.25,
			Longitude:  107.11,
			RecordedAt: base.Format(time.RFC3339),
		})
		assert.NoError(t, err)
		rmock.ExpectSet(keyPrefix+empID, expected, cfg.TTL).SetVal("OK")

		resp, err := svc.Ping(context.Background(), empID, PingRequest{
			Latitude:  floatPtr(-6.25),
			Longitude: floatPtr(107.11),
		})
		assert.NoError(t, err)
		assert.True(t, resp.Recorded)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("employee id bukan uuid ditolak", func(t *testing.T) {
		_, err := svc.Ping(context.Background(), "bukan-uuid", PingRequest{
			Latitude:  floatPtr(-6.25),
			Longitude: floatPtr(107.11),
		})
		assert.Error(t, err)
	})

	t.Run("tracking nonaktif tidak menulis ke redis", func(t *testing.T) {
		off := NewService(rdb, config.TrackingConfig{Required: false, TTL: cfg.TTL})
		resp, err := off.Ping(context.Background(), empID, PingRequest{
			Latitude:  floatPtr(-6.25),
			Longitude: floatPtr(107.11),
		})
		assert.NoError(t, err)
		assert.False(t, resp.Recorded)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
}

func TestService_ListLastLocations(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	svc := NewService(rdb, config.TrackingConfig{Required: true, TTL: 15 * time.Minute})

	empA := uuid.NewString()
	empB := uuid.NewString()
	keyA := keyPrefix + empA
	keyB := keyPrefix + empB

	locA, _ := json.Marshal(LastLocation{EmployeeID: empA, Latitude: -6.25, Longitude: 107.11, RecordedAt: "2024-06-10T09:00:00Z"})

	rmock.ExpectScan(0, keyPrefix+"*", 100).SetVal([]string{keyA, keyB}, 0)
	rmock.ExpectGet(keyA).SetVal(string(locA))
	// key kedua kedaluwarsa di antara SCAN dan GET
	rmock.ExpectGet(keyB).RedisNil()

	locations, err := svc.ListLastLocations(context.Background())
	assert.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Equal(t, empA, locations[0].EmployeeID)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
