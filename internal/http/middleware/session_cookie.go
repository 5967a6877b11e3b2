package middleware

import (
	"context"
	"net/http"
)

// ctxSessionToken — ключ контекста для «сырого» значения access-cookie.
type ctxSessionToken struct{}

// SessionCookie извлекает значение сессионной cookie с именем name и кладёт
// «сырой» токен в контекст. Токен здесь не проверяется: его валидность
// каждый раз заново решает user-service (см. service.ResolveIdentity).
// Отсутствие cookie — штатный случай (анонимный запрос).
func SessionCookie(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(name); err == nil && c.Value != "" {
				ctx := context.WithValue(r.Context(), ctxSessionToken{}, c.Value)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionTokenFrom возвращает токен из контекста («» — анонимный запрос).
func SessionTokenFrom(ctx context.Context) string {
	if v := ctx.Value(ctxSessionToken{}); v != nil {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
