package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/munkush/go-clicker/dispatcher-service/internal/http/handlers"
	"github.com/munkush/go-clicker/dispatcher-service/internal/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger        *slog.Logger
	Timeout       time.Duration
	SessionCookie string                // имя access-cookie, из которой достаётся токен сессии
	Metrics       prometheus.Registerer // nil — метрики запросов не собираются
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(h *handlers.Handlers, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Metrics != nil {
		root.Use(middleware.Metrics(opts.Metrics))
	}
	root.Use(middleware.SessionCookie(opts.SessionCookie)) // вынимаем токен сессии в контекст
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// страницы
	r.Get("/", h.Landing)
	r.Get("/login", h.LoginPage)
	r.Get("/registration", h.RegistrationPage)

	// действия (формы)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.Post("/generate", h.Generate)
	r.Post("/saveCoordinate", h.SaveCoordinate)
}
