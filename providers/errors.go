package providers

import (
	"context"
	"errors"
	"fmt"
)

// AuthError ключ API отклонён или ещё не активирован
type AuthError struct {
	Provider string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: API ключ недействителен или ещё не активирован", e.Provider)
}

// FetchError источник ответил неуспешным статусом
type FetchError struct {
	Provider   string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: данные о погоде не найдены (статус %d)", e.Provider, e.StatusCode)
}

// MalformedDataError ответ не удалось разобрать или нормализовать
type MalformedDataError struct {
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("некорректные данные: %s: %v", e.Reason, e.Err)
	}
	return "некорректные данные: " + e.Reason
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// Виды ошибок для UI и API
const (
	KindAuth      = "auth"
	KindFetch     = "fetch"
	KindMalformed = "malformed"
	KindCanceled  = "canceled"
	KindTransport = "transport"
)

// ErrorKind классифицирует ошибку получения прогноза
func ErrorKind(err error) string {
	var authErr *AuthError
	var fetchErr *FetchError
	var malformedErr *MalformedDataError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &authErr):
		return KindAuth
	case errors.As(err, &fetchErr):
		return KindFetch
	case errors.As(err, &malformedErr):
		return KindMalformed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindTransport
	}
}
