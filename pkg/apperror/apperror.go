package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeUnauthenticated  = "unauthenticated"
	CodePermissionDenied = "permission-denied"
	CodeInvalidArgument  = "invalid-argument"
	CodeNotFound         = "not-found"
	CodeInternal         = "internal"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func Unauthenticated(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

func PermissionDenied(message string) *AppError {
	return &AppError{Code: CodePermissionDenied, Message: message}
}

func InvalidArgument(message string) *AppError {
	return &AppError{Code: CodeInvalidArgument, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message}
}

// HTTPStatus hata kodunu HTTP status'a çevirir. Bilinmeyen her şey 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}

	switch appErr.Code {
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodePermissionDenied:
		return fiber.StatusForbidden
	case CodeInvalidArgument:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Message dışarıya dönecek mesajı seçer: internal hatalarda detay sızdırma.
func Message(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "Internal server error"
	}
	if appErr.Code == CodeInternal {
		return "Internal server error"
	}
	return appErr.Message
}
