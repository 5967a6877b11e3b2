// service содержит бизнес-логику диспетчера: резолв сессии по opaque-токену,
// сборку агрегированного представления, двухшаговую регистрацию и запись
// кликов. Сервис не хранит состояние между запросами; единственный
// переносимый клиентом факт — токен в cookie.
//
// Ошибки апстримов классифицируются адаптерами (см. internal/clients);
// здесь они либо схлопываются в «нет данных» (fail-closed резолв, частичная
// деградация представления), либо пробрасываются хендлерам для отрисовки
// бизнес-сообщения.
package service

import (
	"context"
	"time"

	"github.com/munkush/go-clicker/dispatcher-service/internal/config"
	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
)

// UserClient — операции user-service, нужные диспетчеру.
type UserClient interface {
	ValidateToken(ctx context.Context, token string) (bool, error)
	Username(ctx context.Context, token string) (string, error)
	Login(ctx context.Context, login, code string) (models.TokenPair, error)
	CreateUser(ctx context.Context, login, code string) error
	ListUsers(ctx context.Context) ([]models.UserRecord, error)
}

// GeneratorClient — выпуск одноразового регистрационного кода.
type GeneratorClient interface {
	GenerateCode(ctx context.Context, login string) (string, error)
}

// ClickerClient — запись и чтение кликов.
type ClickerClient interface {
	SaveClick(ctx context.Context, click models.Click) error
	ClicksByUser(ctx context.Context, username string) ([]models.Click, error)
}

// SessionCache — опциональный кэш резолва токенов (nil — кэш выключен).
type SessionCache interface {
	Get(ctx context.Context, token string) (string, bool, error)
	Set(ctx context.Context, token, username string, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

// Service — бизнес-логика dispatcher-service.
type Service struct {
	users     UserClient
	generator GeneratorClient
	clicker   ClickerClient
	sessions  SessionCache
	cfg       config.Config
}

// New создаёт новый экземпляр Service. sessions может быть nil.
func New(users UserClient, generator GeneratorClient, clicker ClickerClient, sessions SessionCache, cfg config.Config) *Service {
	return &Service{
		users:     users,
		generator: generator,
		clicker:   clicker,
		sessions:  sessions,
		cfg:       cfg,
	}
}

// cacheEnabled — кэш активен только при наличии клиента и положительном TTL.
func (s *Service) cacheEnabled() bool {
	return s.sessions != nil && s.cfg.Session.CacheTTL > 0
}
