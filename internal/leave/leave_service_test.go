package leave

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-presensi/internal/attendance"
	leaveerrors "go-presensi/internal/leave/errors"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/schedule"
	"go-presensi/internal/shift"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepo struct {
	store   map[string]*Leave
	overlap int64
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{store: map[string]*Leave{}}
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeLeaveRepo) Create(ctx context.Context, l *Leave) error {
	f.store[l.ID.String()] = l
	return nil
}
func (f *fakeLeaveRepo) FindByID(ctx context.Context, id string) (*Leave, error) {
	if l, ok := f.store[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveRepo) FindAll(ctx context.Context, status string) ([]Leave, error) {
	var rows []Leave
	for _, l := range f.store {
		if status == "" || l.Status == status {
			rows = append(rows, *l)
		}
	}
	return rows, nil
}
func (f *fakeLeaveRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var rows []Leave
	for _, l := range f.store {
		if l.EmployeeID.String() == employeeID {
			rows = append(rows, *l)
		}
	}
	return rows, nil
}
func (f *fakeLeaveRepo) CountOverlapping(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	return f.overlap, nil
}
func (f *fakeLeaveRepo) Update(ctx context.Context, l *Leave) error {
	f.store[l.ID.String()] = l
	return nil
}

type fakeAttRepo struct {
	existing map[string]*attendance.Attendance
	created  []*attendance.Attendance
	updated  []*attendance.Attendance
}

func newFakeAttRepo() *fakeAttRepo {
	return &fakeAttRepo{existing: map[string]*attendance.Attendance{}}
}

func (f *fakeAttRepo) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	f.created = append(f.created, a)
	return nil
}
func (f *fakeAttRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if a, ok := f.existing[date.Format("2006-01-02")]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttRepo) FindOpenByEmployee(ctx context.Context, employeeID string, dates []time.Time) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttRepo) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttRepo) FindAll(ctx context.Context) ([]attendance.Attendance, error) { return nil, nil }
func (f *fakeAttRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttRepo) Update(ctx context.Context, a *attendance.Attendance) error {
	f.updated = append(f.updated, a)
	return nil
}

type fakeScheduler struct{}

func (fakeScheduler) ResolveFor(ctx context.Context, employeeID string, date time.Time) (schedule.ResolvedDay, error) {
	code, err := shift.Resolve(date, 0)
	if err != nil {
		return schedule.ResolvedDay{}, err
	}
	return schedule.ResolvedDay{Date: date, Code: code, Source: schedule.SourceRotation}, nil
}

type failingScheduler struct{}

func (failingScheduler) ResolveFor(ctx context.Context, employeeID string, date time.Time) (schedule.ResolvedDay, error) {
	return schedule.ResolvedDay{}, errors.New("offset rotasi rusak")
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                  { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func TestService_Submit(t *testing.T) {
	empID := uuid.New()
	repo := newFakeLeaveRepo()
	svc := NewService(nil, repo, newFakeAttRepo(), fakeScheduler{}, nil, time.UTC)

	t.Run("pengajuan valid tersimpan PENDING", func(t *testing.T) {
		resp, err := svc.Submit(context.Background(), empID.String(), SubmitLeaveRequest{
			Type:      TypeSick,
			StartDate: "2024-06-10",
			EndDate:   "2024-06-11",
			Reason:    "demam",
		})
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, resp.Status)
		assert.Equal(t, TypeSick, resp.Type)
	})

	t.Run("tanggal terbalik ditolak", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), empID.String(), SubmitLeaveRequest{
			Type:      TypePermit,
			StartDate: "2024-06-12",
			EndDate:   "2024-06-10",
			Reason:    "acara keluarga",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("lebih dari 30 hari ditolak", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), empID.String(), SubmitLeaveRequest{
			Type:      TypeLeave,
			StartDate: "2024-06-01",
			EndDate:   "2024-07-15",
			Reason:    "cuti panjang",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrRangeTooLong)
	})

	t.Run("rentang beririsan dengan pengajuan lain ditolak", func(t *testing.T) {
		repo.overlap = 1
		defer func() { repo.overlap = 0 }()

		_, err := svc.Submit(context.Background(), empID.String(), SubmitLeaveRequest{
			Type:      TypePermit,
			StartDate: "2024-06-10",
			EndDate:   "2024-06-10",
			Reason:    "urusan pribadi",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrOverlappingLeave)
	})
}

func TestService_Approve(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	empID := uuid.New()
	repo := newFakeLeaveRepo()
	attRepo := newFakeAttRepo()
	outbox := &fakeOutbox{}
	svc := NewService(db, repo, attRepo, fakeScheduler{}, outbox, time.UTC)

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: empID,
		Type:       TypeSick,
		StartDate:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:     StatusPending,
	}
	assert.NoError(t, repo.Create(context.Background(), l))

	// hari kedua sudah punya record LATE dari clock-in sebelumnya
	existing := &attendance.Attendance{
		ID:          uuid.New(),
		EmployeeID:  empID,
		WorkDate:    time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		ShiftCode:   "P",
		Status:      "LATE",
		LateMinutes: 20,
	}
	attRepo.existing["2024-06-11"] = existing

	t.Run("persetujuan menstempel seluruh hari", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		deciderID := uuid.NewString()
		resp, err := svc.Approve(context.Background(), l.ID.String(), deciderID, DecideLeaveRequest{Notes: "lekas sembuh"})
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, resp.Status)
		assert.Equal(t, deciderID, *resp.DecidedBy)

		// 3 hari: 2 record baru + 1 record lama ditimpa
		assert.Len(t, attRepo.created, 2)
		assert.Len(t, attRepo.updated, 1)
		assert.Equal(t, TypeSick, attRepo.updated[0].Status)
		assert.Zero(t, attRepo.updated[0].LateMinutes)

		// tiap hari menghasilkan satu event koreksi
		assert.Len(t, outbox.events, 3)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pengajuan yang sudah diputuskan tidak bisa diputuskan lagi", func(t *testing.T) {
		_, err := svc.Approve(context.Background(), l.ID.String(), uuid.NewString(), DecideLeaveRequest{})
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
	})
}

func TestService_Approve_ResolveJadwalGagal(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := newFakeLeaveRepo()
	attRepo := newFakeAttRepo()
	svc := NewService(db, repo, attRepo, failingScheduler{}, nil, time.UTC)

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Type:       TypePermit,
		StartDate:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:     StatusPending,
	}
	assert.NoError(t, repo.Create(context.Background(), l))

	mock.ExpectBegin()
	mock.ExpectCommit()

	// resolve yang gagal tidak menggagalkan persetujuan; stempel memakai
	// kode OFF sebagai fallback
	resp, err := svc.Approve(context.Background(), l.ID.String(), uuid.NewString(), DecideLeaveRequest{})
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Len(t, attRepo.created, 1)
	assert.Equal(t, "OFF", attRepo.created[0].ShiftCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RejectAndCancel(t *testing.T) {
	empID := uuid.New()
	repo := newFakeLeaveRepo()
	svc := NewService(nil, repo, newFakeAttRepo(), fakeScheduler{}, nil, time.UTC)

	newPending := func() *Leave {
		l := &Leave{
			ID:         uuid.New(),
			EmployeeID: empID,
			Type:       TypePermit,
			StartDate:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Status:     StatusPending,
		}
		repo.store[l.ID.String()] = l
		return l
	}

	t.Run("reject tidak menyentuh attendance", func(t *testing.T) {
		l := newPending()
		resp, err := svc.Reject(context.Background(), l.ID.String(), uuid.NewString(), DecideLeaveRequest{Notes: "kuota habis"})
		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, resp.Status)
		assert.Equal(t, "kuota habis", *resp.DecisionNotes)
	})

	t.Run("pemilik bisa membatalkan selagi PENDING", func(t *testing.T) {
		l := newPending()
		resp, err := svc.Cancel(context.Background(), l.ID.String(), empID.String())
		assert.NoError(t, err)
		assert.Equal(t, StatusCanceled, resp.Status)
	})

	t.Run("bukan pemilik tidak bisa membatalkan", func(t *testing.T) {
		l := newPending()
		_, err := svc.Cancel(context.Background(), l.ID.String(), uuid.NewString())
		assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
	})
}
