package attendanceerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrLocationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Lokasi wajib dikirim saat absen",
		http.StatusBadRequest,
	)
	ErrOutsideGeofence = apperror.New(
		apperror.CodePolicyViolation,
		"Lokasi Anda di luar radius kantor",
		http.StatusUnprocessableEntity,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Anda sudah melakukan clock-in hari ini",
		http.StatusConflict,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeConflict,
		"Anda sudah melakukan clock-out untuk shift ini",
		http.StatusConflict,
	)
	ErrNoOpenAttendance = apperror.New(
		apperror.CodeNotFound,
		"Belum ada clock-in yang bisa di-clock-out",
		http.StatusNotFound,
	)
	ErrClockOutTooEarly = apperror.New(
		apperror.CodePolicyViolation,
		"Clock-out hanya diizinkan mulai 5 menit sebelum jam pulang terjadwal",
		http.StatusUnprocessableEntity,
	)
	ErrMissingSchedule = apperror.New(
		apperror.CodeInvalidState,
		"Jadwal shift untuk hari ini tidak dapat ditentukan",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidCorrectionStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status koreksi harus salah satu dari PERMIT, SICK, LEAVE, ALPHA",
		http.StatusBadRequest,
	)
)
