package scheduleerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Rentang tanggal tidak valid",
		http.StatusBadRequest,
	)
	ErrInvalidShiftCode = apperror.New(
		apperror.CodeInvalidInput,
		"Kode shift tidak dikenal",
		http.StatusBadRequest,
	)
	ErrOverrideNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule override not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
