package activitylog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLogRepo struct {
	created []*ActivityLog
	deleted []time.Time
	err     error
}

func (f *fakeLogRepo) Create(ctx context.Context, entry *ActivityLog) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, entry)
	return nil
}
func (f *fakeLogRepo) FindRecent(ctx context.Context, limit int) ([]ActivityLog, error) {
	rows := make([]ActivityLog, 0, len(f.created))
	for _, e := range f.created {
		rows = append(rows, *e)
	}
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}
func (f *fakeLogRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.deleted = append(f.deleted, cutoff)
	return 0, nil
}

func TestService_Record(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewService(repo).(*service)

	base := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	svc.Record(context.Background(), Entry{
		UserID:     "bukan-uuid",
		Method:     "POST",
		Path:       "/api/attendances/clock-in",
		StatusCode: 201,
		UserAgent:  "Mozilla/5.0 (Linux; Android 14) Mobile",
	})

	assert.Len(t, repo.created, 1)
	rec := repo.created[0]
	assert.Equal(t, DeviceMobile, rec.Device)
	assert.Nil(t, rec.UserID) // user id yang bukan UUID tidak disimpan

	t.Run("sweep memakai cutoff retensi 3 hari", func(t *testing.T) {
		assert.Len(t, repo.deleted, 1)
		assert.Equal(t, base.AddDate(0, 0, -RetentionDays), repo.deleted[0])
	})

	t.Run("setiap write menyapu lagi dengan cutoff terkini", func(t *testing.T) {
		later := base.Add(10 * time.Minute)
		svc.now = func() time.Time { return later }
		svc.Record(context.Background(), Entry{Method: "GET", Path: "/api/attendances/me", StatusCode: 200})
		assert.Len(t, repo.deleted, 2)
		assert.Equal(t, later.AddDate(0, 0, -RetentionDays), repo.deleted[1])
	})
}

func TestService_Record_BestEffort(t *testing.T) {
	repo := &fakeLogRepo{err: context.DeadlineExceeded}
	svc := NewService(repo)

	// tidak panic dan tidak mengembalikan apa pun meski repo gagal
	svc.Record(context.Background(), Entry{Method: "GET", Path: "/healthz", StatusCode: 200})
	assert.Empty(t, repo.created)
	assert.Empty(t, repo.deleted) // write gagal tidak memicu sweep
}

func TestService_ListRecent(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewService(repo)

	for i := 0; i < 3; i++ {
		svc.Record(context.Background(), Entry{Method: "GET", Path: "/api/employees", StatusCode: 200, UserAgent: "curl/8.4.0"})
	}

	resp, err := svc.ListRecent(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, DeviceUnknown, resp[0].Device)

	t.Run("limit tidak wajar dinormalkan", func(t *testing.T) {
		resp, err := svc.ListRecent(context.Background(), -5)
		assert.NoError(t, err)
		assert.Len(t, resp, 3)
	})
}
