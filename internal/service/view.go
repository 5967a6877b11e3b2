package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
	"github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

// BuildView собирает агрегат для главной страницы.
//
// Список кодов запрашивается всегда (он не скоупится по пользователю);
// клики — только при известной identity. Оба запроса независимы и идут
// параллельно. Отказ любого из них деградирует до отсутствующей секции
// и никогда не роняет запрос — ошибки здесь только логируются.
func (s *Service) BuildView(ctx context.Context, username string) models.View {
	const op = "service/view/BuildView"

	lg := log.From(ctx)
	view := models.View{Login: username}

	var g errgroup.Group

	g.Go(func() error {
		codes, err := s.users.ListUsers(ctx)
		if err != nil {
			lg.Warn("codes_list_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil
		}
		view.Codes = codes
		return nil
	})

	if username != "" {
		g.Go(func() error {
			clicks, err := s.clicker.ClicksByUser(ctx, username)
			if err != nil {
				lg.Warn("clicks_list_failed",
					slog.String("op", op),
					slog.String("username", username),
					slog.String("err", err.Error()),
				)
				return nil
			}
			view.Clicks = clicks
			return nil
		})
	}

	// Замыкания всегда возвращают nil: частичная деградация — не ошибка.
	_ = g.Wait()

	return view
}
