package leaveerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Tanggal selesai tidak boleh sebelum tanggal mulai",
		http.StatusBadRequest,
	)
	ErrRangeTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Pengajuan izin maksimal 30 hari",
		http.StatusBadRequest,
	)
	ErrOverlappingLeave = apperror.New(
		apperror.CodeConflict,
		"Masih ada pengajuan lain pada rentang tanggal yang sama",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Pengajuan ini sudah diputuskan",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"Pengajuan ini bukan milik Anda",
		http.StatusForbidden,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
