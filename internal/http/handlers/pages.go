package handlers

import (
	"net/http"

	"github.com/munkush/go-clicker/dispatcher-service/internal/http/middleware"
)

// Landing — GET /.
// Есть валидная сессия — таблица, нет — страница логина.
// Идентичность проверяется заново на каждый запрос, без кеша в handler-слое.
func (h *Handlers) Landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := middleware.SessionTokenFrom(ctx)
	username, ok := h.svc.ResolveIdentity(ctx, token)
	if !ok {
		h.render(w, r, "login.html", loginPage{})
		return
	}

	h.render(w, r, "table.html", tablePage{View: h.svc.BuildView(ctx, username)})
}

// LoginPage — GET /login.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", loginPage{})
}

// RegistrationPage — GET /registration.
func (h *Handlers) RegistrationPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "registration.html", nil)
}
