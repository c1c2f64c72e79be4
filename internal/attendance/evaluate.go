package attendance

import (
	"errors"
	"time"

	"go-presensi/internal/shift"
)

// Status adalah enum tertutup untuk klasifikasi kehadiran harian.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAlpha   Status = "ALPHA" // tidak pernah clock-in pada hari kerja terjadwal
	StatusPermit  Status = "PERMIT"
	StatusSick    Status = "SICK"
	StatusLeave   Status = "LEAVE"
	StatusOff     Status = "OFF"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAlpha, StatusPermit, StatusSick, StatusLeave, StatusOff:
		return true
	default:
		return false
	}
}

// Authorized bernilai true untuk status yang ditetapkan eksternal dan
// tidak pernah dikenai penalti waktu.
func (s Status) Authorized() bool {
	switch s {
	case StatusPermit, StatusSick, StatusLeave, StatusOff:
		return true
	default:
		return false
	}
}

// ScheduledShift adalah shift terjadwal hasil resolusi rotasi/override,
// dengan jam masuk dan pulang yang sudah diwujudkan untuk tanggal itu.
// Untuk CodeOff, Start dan End dibiarkan kosong.
type ScheduledShift struct {
	Code  shift.Code
	Start time.Time
	End   time.Time
}

type Evaluation struct {
	Status            Status
	LateMinutes       int
	EarlyLeaveMinutes int
}

// ErrMissingSchedule menandai data error: evaluasi diminta untuk shift
// kerja tanpa jam terjadwal. Tidak boleh di-default diam-diam ke nol.
var ErrMissingSchedule = errors.New("scheduled shift window is required for evaluation")

// ClockOutTolerance adalah toleransi pulang lebih awal yang masih diizinkan.
const ClockOutTolerance = 5 * time.Minute

// Evaluate membandingkan jam aktual dengan jadwal dan menghasilkan
// status, menit keterlambatan, dan menit pulang-awal. Fungsi murni.
//
// Clock-in pada hari OFF tetap dicatat PRESENT tanpa keterlambatan
// (kebijakan yang dipilih: hari libur tidak pernah dipenalti).
func Evaluate(clockIn time.Time, clockOut *time.Time, sched ScheduledShift) (Evaluation, error) {
	if clockIn.IsZero() {
		return Evaluation{}, errors.New("clock-in timestamp is required")
	}

	if sched.Code == shift.CodeOff {
		return Evaluation{Status: StatusPresent}, nil
	}
	if !sched.Code.Valid() {
		return Evaluation{}, ErrMissingSchedule
	}
	if sched.Start.IsZero() || sched.End.IsZero() {
		return Evaluation{}, ErrMissingSchedule
	}

	ev := Evaluation{Status: StatusPresent}

	if late := clockIn.Sub(sched.Start); late > 0 {
		ev.LateMinutes = int(late / time.Minute)
	}
	if clockOut != nil {
		if early := sched.End.Sub(*clockOut); early > 0 {
			ev.EarlyLeaveMinutes = int(early / time.Minute)
		}
	}
	if ev.LateMinutes > 0 {
		ev.Status = StatusLate
	}
	return ev, nil
}

// CanClockOut mengizinkan clock-out hanya mulai 5 menit sebelum jam
// pulang terjadwal. Precondition keras, bukan clamp.
func CanClockOut(now, scheduledEnd time.Time) bool {
	return !now.Before(scheduledEnd.Add(-ClockOutTolerance))
}

// Score mengubah satu record kehadiran menjadi skor harian 0-100.
// Status tidak dikenal menghasilkan 0 (fail closed).
func Score(status Status, lateMinutes, earlyLeaveMinutes int) int {
	switch status {
	case StatusAlpha:
		return 0
	case StatusSick, StatusPermit, StatusLeave, StatusOff:
		return 100
	case StatusPresent, StatusLate:
		score := 100 - lateMinutes - earlyLeaveMinutes
		if score < 0 {
			return 0
		}
		if score > 100 {
			return 100
		}
		return score
	default:
		return 0
	}
}
