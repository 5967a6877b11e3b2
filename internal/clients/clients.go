// clients содержит HTTP-адаптеры к трём апстрим-сервисам диспетчера:
// user-service, generator-service, clicker-service.
//
// Каждый адаптер — узкая обёртка над одной возможностью апстрима.
// Транспортные сбои единообразно переводятся в ErrUnavailable,
// бизнес-отказы — в *StatusError с сообщением из тела ответа
// (см. errors.go); сырые ошибки транспорта наверх не пробрасываются.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/munkush/go-clicker/dispatcher-service/internal/clients/transport"
	"github.com/munkush/go-clicker/dispatcher-service/internal/config"
)

// Clients агрегирует все HTTP-клиенты апстрим-сервисов.
type Clients struct {
	Users     *UserClient
	Generator *GeneratorClient
	Clicker   *ClickerClient

	hc *http.Client
}

// New создаёт общий http.Client с таймаутом и адаптеры для всех апстримов.
func New(cfg config.Config, log *slog.Logger) (*Clients, error) {
	const op = "internal/clients/New"

	for name, addr := range map[string]string{
		"users":     cfg.Upstreams.UsersURL,
		"generator": cfg.Upstreams.GeneratorURL,
		"clicker":   cfg.Upstreams.ClickerURL,
	} {
		if addr == "" {
			return nil, fmt.Errorf("%s: empty %s upstream url", op, name)
		}
		if _, err := url.Parse(addr); err != nil {
			return nil, fmt.Errorf("%s: bad %s upstream url: %w", op, name, err)
		}
	}

	// Цепочка исходящего транспорта: metadata -> logging -> сеть.
	rt := transport.WithLogging(
		transport.WithMetadata(nil, "dispatcher-service"),
		log,
	)

	hc := &http.Client{
		Timeout:   cfg.Timeouts.Upstream,
		Transport: rt,
	}

	return &Clients{
		Users:     &UserClient{caller{hc: hc, base: cfg.Upstreams.UsersURL}},
		Generator: &GeneratorClient{caller{hc: hc, base: cfg.Upstreams.GeneratorURL}},
		Clicker:   &ClickerClient{caller{hc: hc, base: cfg.Upstreams.ClickerURL}},
		hc:        hc,
	}, nil
}

// Close освобождает простаивающие соединения пула.
func (c *Clients) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// caller — общий низкоуровневый вызов апстрима с единой классификацией ошибок.
type caller struct {
	hc   *http.Client
	base string
}

func (c caller) url(path string, query url.Values) string {
	u := strings.TrimRight(c.base, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON выполняет вызов и раскладывает исход по таксономии:
//   - ошибка сети/таймаут -> ErrUnavailable;
//   - 2xx + нечитаемое тело -> ErrUnavailable;
//   - 4xx/5xx -> *StatusError с сообщением из тела;
//   - прочие статусы -> ErrUnexpectedStatus.
func (c caller) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	const op = "internal/clients/doJSON"

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode: %w: %v", op, ErrUnavailable, err)
		}
		return nil

	case resp.StatusCode >= 400:
		return &StatusError{
			Code:    resp.StatusCode,
			Message: extractMessage(resp),
		}

	default:
		return fmt.Errorf("%s: %w: %d", op, ErrUnexpectedStatus, resp.StatusCode)
	}
}

// extractMessage достаёт человекочитаемое сообщение из тела ошибки.
// Пробуем типовые JSON-обёртки, затем сырое тело, затем текст статуса.
func extractMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var wrapped struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &wrapped) == nil {
		if wrapped.Message != "" {
			return wrapped.Message
		}
		if wrapped.Error != "" {
			return wrapped.Error
		}
	}

	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return http.StatusText(resp.StatusCode)
}
