package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/munkush/go-clicker/dispatcher-service/internal/clients"
	apierrors "github.com/munkush/go-clicker/dispatcher-service/internal/errors"
	"github.com/munkush/go-clicker/dispatcher-service/internal/http/middleware"
	logctx "github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

// Login — POST /login (form: login, code).
//
// Успех: ставим пару cookie и сразу рендерим таблицу для вошедшего
// пользователя. Отказ user-service (неверный код, нет пользователя) и
// недоступность — страница логина с сообщением; cookie не трогаем.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logctx.From(ctx)

	if err := r.ParseForm(); err != nil {
		h.render(w, r, "login.html", loginPage{Error: "malformed form"})
		return
	}
	login := r.PostFormValue("login")
	code := r.PostFormValue("code")

	pair, err := h.svc.LoginUser(ctx, login, code)
	switch {
	case err == nil:
		h.setSessionCookies(w, pair)

		username, ok := h.svc.ResolveIdentity(ctx, pair.AccessToken)
		if !ok {
			// токен выдан, но тут же не подтвердился — считаем
			// сессию анонимной, таблицу всё равно показываем.
			log.Warn("fresh_token_not_resolved", slog.String("login", login))
			username = ""
		}
		h.render(w, r, "table.html", tablePage{View: h.svc.BuildView(ctx, username)})

	case errors.Is(err, clients.ErrUnexpectedStatus):
		// не-2xx без тела ошибки: сессии нет, но страницу отдаём.
		h.render(w, r, "table.html", tablePage{View: h.svc.BuildView(ctx, "")})

	default:
		h.render(w, r, "login.html", loginPage{Error: apierrors.UserMessage(err)})
	}
}

// Logout — GET /logout.
// Чистим пару cookie, сбрасываем кеш сессии и возвращаем страницу логина.
// Сам токен на стороне user-service не отзывается.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token := middleware.SessionTokenFrom(ctx); token != "" {
		h.svc.DropSession(ctx, token)
	}
	h.clearSessionCookies(w)

	h.render(w, r, "login.html", loginPage{Message: "Successful logout"})
}
