// errors стандартизирует обработку ошибок HTTP-слоя диспетчера.
//
// Потребителей два:
//   - HTML-страницы: бизнес-отказ — это состояние представления, а не статус
//     ответа, поэтому хендлеры рендерят 200 с UserMessage(err) внутри;
//   - операционные ответы (паника, таймаут запроса): WriteError пишет
//     JSON-тело с корректным статусом и безопасным сообщением.
//
// Источник классов — internal/clients: транспортный сбой (ErrUnavailable),
// бизнес-отказ с сообщением (*StatusError), неожиданный статус
// (ErrUnexpectedStatus). Детали транспорта наружу не утекают.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/munkush/go-clicker/dispatcher-service/internal/clients"
)

// APIError — единый формат для машиночитаемых ответов.
// Code — короткий стабильный код; Message — безопасное описание;
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// UserMessage — безопасное человекочитаемое сообщение для HTML-рендера.
// Сообщения бизнес-отказов апстримов показываются как есть; транспортные
// сбои сводятся к нейтральной формулировке.
func UserMessage(err error) string {
	if se, ok := clients.AsStatus(err); ok && se.Message != "" {
		return se.Message
	}

	switch {
	case errors.Is(err, clients.ErrUnavailable):
		return "service temporarily unavailable"
	case errors.Is(err, clients.ErrUnexpectedStatus):
		return "unexpected upstream response"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return "internal error"
	}
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированное JSON-тело.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: 500/internal, чтобы не
//     послать "200 OK" с телом ошибки и не маскировать баг;
//   - *StatusError — статус апстрима пробрасывается как есть;
//   - ErrUnavailable -> 503, ErrUnexpectedStatus -> 502,
//     context.DeadlineExceeded -> 504;
//   - прочее -> 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, envelope("internal", "internal error")
	}

	if se, ok := clients.AsStatus(err); ok {
		return se.Code, envelope("upstream_rejected", se.Message)
	}

	switch {
	case errors.Is(err, clients.ErrUnavailable):
		return http.StatusServiceUnavailable, envelope("unavailable", "service unavailable")
	case errors.Is(err, clients.ErrUnexpectedStatus):
		return http.StatusBadGateway, envelope("bad_upstream", "unexpected upstream response")
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, envelope("deadline_exceeded", "deadline exceeded")
	default:
		return http.StatusInternalServerError, envelope("internal", "internal error")
	}
}

// WriteError — хелпер для операционных JSON-ответов.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func envelope(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}
