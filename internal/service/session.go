package service

import (
	"context"
	"log/slog"

	"github.com/munkush/go-clicker/dispatcher-service/pkg/log"
)

// tokenStatus — размеченный исход проверки токена.
// Недоступность user-service и недействительный токен различимы внутри
// (для логов), но на границе резолвера оба схлопываются в «нет сессии» —
// fail-closed политика исходной системы сохранена.
type tokenStatus int

const (
	tokenValid tokenStatus = iota
	tokenInvalid
	tokenUnavailable
)

// ResolveIdentity резолвит токен из cookie в имя пользователя.
//
// Последовательность на каждый запрос, без ретраев и без состояния:
//  1. пустой токен -> нет сессии;
//  2. validate-token: любая ошибка или не-true -> нет сессии;
//  3. resolve-username: любая ошибка или пустое имя -> нет сессии
//     («действительный токен, но неизвестный пользователь» намеренно
//     неотличим от отсутствия сессии).
//
// При включённом кэше положительный резолв запоминается на Session.CacheTTL;
// ошибки кэша приравниваются к промаху.
func (s *Service) ResolveIdentity(ctx context.Context, token string) (string, bool) {
	const op = "service/session/ResolveIdentity"

	if token == "" {
		return "", false
	}

	lg := log.From(ctx)

	if s.cacheEnabled() {
		if username, ok, err := s.sessions.Get(ctx, token); err == nil && ok {
			return username, true
		} else if err != nil {
			lg.Warn("session_cache_get_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	switch s.checkToken(ctx, token) {
	case tokenValid:
	case tokenInvalid:
		return "", false
	case tokenUnavailable:
		return "", false
	}

	username := s.username(ctx, token)
	if username == "" {
		return "", false
	}

	if s.cacheEnabled() {
		if err := s.sessions.Set(ctx, token, username, s.cfg.Session.CacheTTL); err != nil {
			lg.Warn("session_cache_set_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return username, true
}

// DropSession инвалидирует кэшированный резолв токена (logout).
// Сами cookie чистит HTTP-слой; user-service о logout не уведомляется —
// токен остаётся на его совести.
func (s *Service) DropSession(ctx context.Context, token string) {
	const op = "service/session/DropSession"

	if token == "" || s.sessions == nil {
		return
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		log.From(ctx).Warn("session_cache_delete_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}

// checkToken — первый из двух вызовов user-service.
func (s *Service) checkToken(ctx context.Context, token string) tokenStatus {
	const op = "service/session/checkToken"

	valid, err := s.users.ValidateToken(ctx, token)
	if err != nil {
		log.From(ctx).Warn("token_validate_unavailable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return tokenUnavailable
	}

	if !valid {
		return tokenInvalid
	}
	return tokenValid
}

// username — второй вызов; пустая строка означает «нет identity».
func (s *Service) username(ctx context.Context, token string) string {
	const op = "service/session/username"

	username, err := s.users.Username(ctx, token)
	if err != nil {
		log.From(ctx).Warn("username_resolve_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return ""
	}
	return username
}
