// handlers — HTTP-оркестратор диспетчера: страницы рендерятся на сервере
// из встроенных шаблонов, состояние определяется заново на каждый запрос
// по access-cookie (см. middleware.SessionCookie + service.ResolveIdentity).
//
// Бизнес-отказы апстримов — состояние страницы, а не статус ответа:
// рендерим 200 с сообщением (см. internal/errors.UserMessage).
package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/munkush/go-clicker/dispatcher-service/internal/config"
	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
	"github.com/munkush/go-clicker/dispatcher-service/internal/service"
	logctx "github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	svc  *service.Service
	sess config.SessionConfig
	tmpl *template.Template
}

func New(svc *service.Service, sess config.SessionConfig) *Handlers {
	return &Handlers{
		svc:  svc,
		sess: sess,
		tmpl: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

// loginPage — данные страницы логина.
type loginPage struct {
	Error   string
	Message string
}

// successPage — результат регистрации: либо пара логин/код, либо ошибка.
type successPage struct {
	Login string
	Code  string
	Error string
}

// tablePage — агрегированное представление главной страницы.
type tablePage struct {
	models.View
}

// render — единая точка отрисовки шаблона; ошибка рендера логируется,
// но запрос не падает (часть ответа уже могла уйти клиенту).
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logctx.From(r.Context()).Error("template_render_failed",
			slog.String("template", name),
			slog.String("err", err.Error()),
		)
	}
}

// setSessionCookies выставляет пару access/refresh cookie.
// Инвариант: пара всегда ставится и чистится вместе, по отдельности — никогда.
func (h *Handlers) setSessionCookies(w http.ResponseWriter, pair models.TokenPair) {
	maxAge := int(h.sess.CookieTTL.Seconds())
	http.SetCookie(w, h.cookie(h.sess.AccessCookie, pair.AccessToken, maxAge))
	http.SetCookie(w, h.cookie(h.sess.RefreshCookie, pair.RefreshToken, maxAge))
}

// clearSessionCookies чистит пару: пустое значение, Max-Age=0.
func (h *Handlers) clearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, h.cookie(h.sess.AccessCookie, "", -1))
	http.SetCookie(w, h.cookie(h.sess.RefreshCookie, "", -1))
}

func (h *Handlers) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	}
}
