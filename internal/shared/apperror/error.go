package apperror

import "fmt"

type AppError struct {
	Code       string // Kode error (contoh: OUTSIDE_GEOFENCE)
	Message    string // Pesan yang aman ditampilkan ke user
	HTTPStatus int
	Err        error // Error asli yang dibungkus (opsional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap mendukung errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
