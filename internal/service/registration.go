package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
	"github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

// Register выполняет двухшаговую регистрацию: выпуск кода в
// generator-service, затем создание пользователя в user-service.
//
// Шаги не транзакционны и компенсации нет: если create-user падает после
// успешного generate, код остаётся осиротевшим на стороне генератора.
// Это принятая брешь консистентности; состояние «код выпущен, пользователь
// не создан» фиксируется явной записью orphaned_code, а не маскируется.
func (s *Service) Register(ctx context.Context, login string) (models.Registration, error) {
	const op = "service/registration/Register"

	lg := log.From(ctx)

	code, err := s.generator.GenerateCode(ctx, login)
	if err != nil {
		lg.Warn("code_generate_failed",
			slog.String("op", op),
			slog.String("login", login),
			slog.String("err", err.Error()),
		)
		return models.Registration{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.users.CreateUser(ctx, login, code); err != nil {
		lg.Warn("orphaned_code",
			slog.String("op", op),
			slog.String("login", login),
			slog.String("err", err.Error()),
		)
		return models.Registration{}, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("registration_ok",
		slog.String("op", op),
		slog.String("login", login),
	)

	return models.Registration{Login: login, Code: code}, nil
}
