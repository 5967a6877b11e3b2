package handlers

import (
	"net/http"

	apierrors "github.com/munkush/go-clicker/dispatcher-service/internal/errors"
)

// Generate — POST /generate (form: login).
//
// Двухшаговая регистрация: generator выдаёт код, user-service создаёт
// пользователя. Обе ветки исхода рендерят success.html: при успехе —
// логин и код, при ошибке любого шага — сообщение (частичный успех
// первого шага наружу не виден, см. service.Register).
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.render(w, r, "success.html", successPage{Error: "malformed form"})
		return
	}
	login := r.PostFormValue("login")

	reg, err := h.svc.Register(ctx, login)
	if err != nil {
		h.render(w, r, "success.html", successPage{Error: apierrors.UserMessage(err)})
		return
	}

	h.render(w, r, "success.html", successPage{Login: reg.Login, Code: reg.Code})
}
