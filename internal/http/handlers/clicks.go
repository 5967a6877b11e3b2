package handlers

import (
	"net/http"

	"github.com/munkush/go-clicker/dispatcher-service/internal/http/middleware"
)

// SaveCoordinate — POST /saveCoordinate (form: x, y).
//
// Клик сохраняется только для подтверждённой сессии; анонимный клик
// молча отбрасывается, страница всё равно перерисовывается. Координаты
// не валидируются и уходят в clicker как есть.
func (h *Handlers) SaveCoordinate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.render(w, r, "table.html", tablePage{View: h.svc.BuildView(ctx, "")})
		return
	}
	x := r.PostFormValue("x")
	y := r.PostFormValue("y")

	username := h.svc.SaveClick(ctx, middleware.SessionTokenFrom(ctx), x, y)

	h.render(w, r, "table.html", tablePage{View: h.svc.BuildView(ctx, username)})
}
