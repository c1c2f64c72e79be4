package employeeerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidRotationOffset = apperror.New(
		apperror.CodeInvalidInput,
		"Rotation offset harus di antara 0 dan 4",
		http.StatusBadRequest,
	)
)
