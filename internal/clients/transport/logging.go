// transport предоставляет обёртки http.RoundTripper для исходящих вызовов
// к апстрим-сервисам: проброс метаданных и логирование.
package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

// WithLogging — логирование исходящих HTTP-вызовов.
// Поведение:
//   - вытягивает request_id из контекста (или генерирует новый);
//   - добавляет поля method/host/path, прокладывает обогащённый логгер
//     в контекст запроса (pkg/log);
//   - пишет одну финальную запись уровня Info: msg="upstream", status, dur.
//
// Безопасность: не логирует тела запросов и ответов — в них ходят токены.
func WithLogging(next http.RoundTripper, base *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if base == nil {
		base = slog.Default()
	}

	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()

		rid := ""
		if v := req.Context().Value(CtxRequestID); v != nil {
			rid, _ = v.(string)
		}
		if rid == "" {
			rid = uuid.NewString()
		}

		l := base.With(
			slog.String("request_id", rid),
			slog.String("method", req.Method),
			slog.String("host", req.URL.Host),
			slog.String("path", req.URL.Path),
		)
		req = req.WithContext(log.Into(req.Context(), l))

		resp, err := next.RoundTrip(req)

		attrs := []slog.Attr{
			slog.Duration("dur", time.Since(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("err", err.Error()))
		} else {
			attrs = append(attrs, slog.Int("status", resp.StatusCode))
		}
		l.LogAttrs(req.Context(), slog.LevelInfo, "upstream", attrs...)

		return resp, err
	})
}
