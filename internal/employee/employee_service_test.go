package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	employeeerrors "go-presensi/internal/employee/errors"
	"go-presensi/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	createFn   func(ctx context.Context, e *Employee) error
	findAllFn  func(ctx context.Context) ([]Employee, error)
	findByIDFn func(ctx context.Context, id string) (*Employee, error)
	updateFn   func(ctx context.Context, e *Employee) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *Employee) error {
	return f.createFn(ctx, e)
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *Employee) error {
	return f.updateFn(ctx, e)
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeCounterRepo struct {
	next int64
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error                 { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func intPtr(v int) *int { return &v }

func TestService_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	var created *Employee
	repo := &fakeEmployeeRepo{
		createFn: func(ctx context.Context, e *Employee) error {
			created = e
			return nil
		},
	}
	outbox := &fakeOutboxRepo{}
	svc := NewService(db, repo, &fakeCounterRepo{}, outbox, nil)

	t.Run("nomor karyawan di-generate dari counter", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
			FullName:       "Budi Santoso",
			Position:       "Operator",
			RotationOffset: intPtr(2),
		})
		assert.NoError(t, err)
		assert.Equal(t, "EMP-00001", resp.EmployeeNumber)
		assert.Equal(t, 2, resp.RotationOffset)
		assert.Equal(t, "EMPLOYEE", resp.Role)
		assert.True(t, resp.Active)
		assert.NotNil(t, created)

		// event outbox ikut ditulis dalam transaksi yang sama
		assert.Len(t, outbox.events, 1)
		assert.Equal(t, "employee.created", outbox.events[0].EventType)
		var payload map[string]any
		assert.NoError(t, json.Unmarshal(outbox.events[0].Payload, &payload))
		assert.Equal(t, created.ID.String(), payload["employee_id"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rotation offset di luar 0..4 ditolak", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateEmployeeRequest{
			FullName:       "Siti",
			RotationOffset: intPtr(5),
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRotationOffset)

		_, err = svc.Create(context.Background(), CreateEmployeeRequest{
			FullName: "Siti",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRotationOffset)
	})
}

func TestService_GetByID(t *testing.T) {
	id := uuid.New()
	repo := &fakeEmployeeRepo{
		findByIDFn: func(ctx context.Context, got string) (*Employee, error) {
			if got == id.String() {
				return &Employee{ID: id, FullName: "Budi", RotationOffset: 1, Role: "EMPLOYEE", Active: true}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(nil, repo, &fakeCounterRepo{}, nil, nil)

	t.Run("ditemukan", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), id.String())
		assert.NoError(t, err)
		assert.Equal(t, "Budi", resp.FullName)
	})

	t.Run("id bukan uuid", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "bukan-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("tidak ditemukan", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestService_GetOptions_Cache(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()

	rows := []Employee{
		{ID: uuid.New(), EmployeeNumber: "EMP-00001", FullName: "Budi", Role: "EMPLOYEE", Active: true},
	}
	repo := &fakeEmployeeRepo{
		findAllFn: func(ctx context.Context) ([]Employee, error) { return rows, nil },
	}
	svc := NewService(nil, repo, &fakeCounterRepo{}, nil, rdb)

	t.Run("cache hit tidak menyentuh repo", func(t *testing.T) {
		cached, err := json.Marshal(mapToListResponse(rows))
		assert.NoError(t, err)
		rmock.ExpectGet(employeeOptionsKey).SetVal(string(cached))

		repoCalled := false
		repo.findAllFn = func(ctx context.Context) ([]Employee, error) {
			repoCalled = true
			return rows, nil
		}

		resp, err := svc.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.False(t, repoCalled)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("cache miss mengisi ulang cache", func(t *testing.T) {
		repo.findAllFn = func(ctx context.Context) ([]Employee, error) { return rows, nil }
		payload, err := json.Marshal(mapToListResponse(rows))
		assert.NoError(t, err)

		rmock.ExpectGet(employeeOptionsKey).RedisNil()
		rmock.ExpectSet(employeeOptionsKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := svc.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Budi", resp[0].FullName)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
}
