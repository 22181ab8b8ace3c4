package service

import (
	"errors"
	"fmt"
	"net/http"

	"member-search-service/internal/repository"
	"member-search-service/internal/search"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов (например, TEAM_EXISTS).
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusConflict,
	}
}

// internal превращает ошибку хранилища в STORE_ERROR (503), остальное в INTERNAL (500).
// Ошибки валидации страницы и сортировки становятся BAD_REQUEST.
func internal(msg string, err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, search.ErrInvalidPageRequest) || errors.Is(err, search.ErrInvalidSort) {
		return &AppError{
			Code:    "BAD_REQUEST",
			Message: err.Error(),
			Status:  http.StatusBadRequest,
			Err:     err,
		}
	}
	if errors.Is(err, repository.ErrStore) {
		return &AppError{
			Code:    "STORE_ERROR",
			Message: msg,
			Status:  http.StatusServiceUnavailable,
			Err:     err,
		}
	}
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}
