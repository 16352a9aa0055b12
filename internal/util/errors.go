package util

import (
	"errors"
	"net/http"
)

// Kind : категория ошибки, определяющая HTTP-статус
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError : ошибка, которая доходит до границы запроса со статусом и сообщением
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func BadRequest(message string, err error) error {
	return NewError(KindBadRequest, message, err)
}

func Unauthorized(message string, err error) error {
	return NewError(KindUnauthorized, message, err)
}

func NotFound(message string, err error) error {
	return NewError(KindNotFound, message, err)
}

func Conflict(message string, err error) error {
	return NewError(KindConflict, message, err)
}

func Internal(message string, err error) error {
	return NewError(KindInternal, message, err)
}

// KindOf : категория ошибки; всё, что не AppError, считается внутренней ошибкой
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func StatusOf(err error) int {
	return KindOf(err).Status()
}

// PublicMessage : сообщение, которое можно показать клиенту
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "internal server error"
}
