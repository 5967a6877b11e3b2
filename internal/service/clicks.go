package service

import (
	"context"
	"log/slog"

	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
	"github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

// SaveClick записывает клик от имени владельца токена.
//
// Identity резолвится заново из токена на каждый вызов — никогда не
// берётся из предыдущего шага. Токен, истёкший между загрузкой страницы
// и отправкой координаты, приводит к молчаливому отбрасыванию события,
// а не к ошибке. Возвращается резолвленное имя (пустое — нет сессии),
// чтобы вызывающий собрал представление для того же пользователя.
func (s *Service) SaveClick(ctx context.Context, token, x, y string) string {
	const op = "service/clicks/SaveClick"

	lg := log.From(ctx)

	username, ok := s.ResolveIdentity(ctx, token)
	if !ok {
		lg.Debug("click_dropped",
			slog.String("op", op),
		)
		return ""
	}

	click := models.Click{X: x, Y: y, Username: username}
	if err := s.clicker.SaveClick(ctx, click); err != nil {
		lg.Warn("click_save_failed",
			slog.String("op", op),
			slog.String("username", username),
			slog.String("err", err.Error()),
		)
		return username
	}

	lg.Info("click_saved",
		slog.String("op", op),
		slog.String("username", username),
	)

	return username
}
