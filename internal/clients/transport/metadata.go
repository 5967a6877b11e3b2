package transport

import (
	"net/http"
)

type CtxKey string

const (
	CtxRequestID CtxKey = "request_id"
)

// WithMetadata — добавляет в исходящий HTTP-запрос заголовки:
//   - X-Request-Id (если есть в контексте),
//   - User-Agent (если передан параметром).
//
// Исходный *http.Request не модифицируется: заголовки выставляются на клоне.
func WithMetadata(next http.RoundTripper, userAgent string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		out := req.Clone(req.Context())

		if v := req.Context().Value(CtxRequestID); v != nil {
			if rid, _ := v.(string); rid != "" {
				out.Header.Set("X-Request-Id", rid)
			}
		}
		if userAgent != "" {
			out.Header.Set("User-Agent", userAgent)
		}

		return next.RoundTrip(out)
	})
}

// roundTripperFunc — адаптер функции к http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
