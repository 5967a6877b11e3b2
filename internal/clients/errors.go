package clients

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable — транспортная или протокольная ошибка апстрима:
	// обрыв соединения, таймаут, нечитаемое тело ответа.
	// Резолвер сессии и агрегатор схлопывают её в «нет данных»;
	// наружу детали не утекают.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrUnexpectedStatus — не-2xx ответ вне классов 4xx/5xx (1xx/3xx).
	// Отдельный случай: исходная система на таком ответе при логине
	// молча отрисовывала агрегатную страницу, и это поведение сохранено.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
)

// StatusError — бизнес-отказ апстрима (4xx/5xx) с человекочитаемым
// сообщением из тела ответа: конфликт регистрации, отклонённый логин.
// Сообщение предназначено для показа пользователю как есть.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Code, e.Message)
}

// AsStatus возвращает *StatusError, если err несёт бизнес-отказ.
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
