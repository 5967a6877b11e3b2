package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
	"github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

// LoginUser обменивает пару логин/код на пару токенов через user-service.
// Классификация ошибок адаптера сохраняется для хендлера: бизнес-отказ
// несёт сообщение апстрима, транспортный сбой и неожиданный статус
// различимы через errors.Is/As.
func (s *Service) LoginUser(ctx context.Context, login, code string) (models.TokenPair, error) {
	const op = "service/auth/LoginUser"

	lg := log.From(ctx)

	pair, err := s.users.Login(ctx, login, code)
	if err != nil {
		lg.Info("login_rejected",
			slog.String("op", op),
			slog.String("login", login),
			slog.String("err", err.Error()),
		)
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_ok",
		slog.String("op", op),
		slog.String("login", login),
	)

	return pair, nil
}
