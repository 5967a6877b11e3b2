package service

// Ручные фейки клиентских интерфейсов для тестов сервисного слоя.
// Апстримы диспетчера — обычный HTTP, поэтому фейки на функциях-полях
// проще и честнее кодогенерированных моков: тест задаёт только нужные
// ему операции, остальные падают с понятным сообщением.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/munkush/go-clicker/dispatcher-service/internal/config"
	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
)

var errFakeNotConfigured = errors.New("fake: operation not configured")

type fakeUsers struct {
	validate func(ctx context.Context, token string) (bool, error)
	username func(ctx context.Context, token string) (string, error)
	login    func(ctx context.Context, login, code string) (models.TokenPair, error)
	create   func(ctx context.Context, login, code string) error
	list     func(ctx context.Context) ([]models.UserRecord, error)
}

func (f *fakeUsers) ValidateToken(ctx context.Context, token string) (bool, error) {
	if f.validate == nil {
		return false, errFakeNotConfigured
	}
	return f.validate(ctx, token)
}

func (f *fakeUsers) Username(ctx context.Context, token string) (string, error) {
	if f.username == nil {
		return "", errFakeNotConfigured
	}
	return f.username(ctx, token)
}

func (f *fakeUsers) Login(ctx context.Context, login, code string) (models.TokenPair, error) {
	if f.login == nil {
		return models.TokenPair{}, errFakeNotConfigured
	}
	return f.login(ctx, login, code)
}

func (f *fakeUsers) CreateUser(ctx context.Context, login, code string) error {
	if f.create == nil {
		return errFakeNotConfigured
	}
	return f.create(ctx, login, code)
}

func (f *fakeUsers) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	if f.list == nil {
		return nil, errFakeNotConfigured
	}
	return f.list(ctx)
}

type fakeGenerator struct {
	generate func(ctx context.Context, login string) (string, error)
}

func (f *fakeGenerator) GenerateCode(ctx context.Context, login string) (string, error) {
	if f.generate == nil {
		return "", errFakeNotConfigured
	}
	return f.generate(ctx, login)
}

type fakeClicker struct {
	save func(ctx context.Context, click models.Click) error
	list func(ctx context.Context, username string) ([]models.Click, error)
}

func (f *fakeClicker) SaveClick(ctx context.Context, click models.Click) error {
	if f.save == nil {
		return errFakeNotConfigured
	}
	return f.save(ctx, click)
}

func (f *fakeClicker) ClicksByUser(ctx context.Context, username string) ([]models.Click, error) {
	if f.list == nil {
		return nil, errFakeNotConfigured
	}
	return f.list(ctx, username)
}

// fakeCache — кэш в памяти с настраиваемыми ошибками.
type fakeCache struct {
	entries map[string]string
	getErr  error
	setErr  error
	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, token string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.entries[token]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, token, username string, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.entries[token] = username
	return nil
}

func (f *fakeCache) Delete(_ context.Context, token string) error {
	f.deletes++
	delete(f.entries, token)
	return nil
}

// newService — сервис с фейками; cache может быть nil.
func newService(t *testing.T, users *fakeUsers, gen *fakeGenerator, clicker *fakeClicker, sessions SessionCache, cacheTTL time.Duration) *Service {
	t.Helper()

	cfg := config.Config{
		Session: config.SessionConfig{
			AccessCookie:  "access-token",
			RefreshCookie: "refresh-token",
			CookieTTL:     5 * time.Hour,
			CacheTTL:      cacheTTL,
		},
	}

	return New(users, gen, clicker, sessions, cfg)
}
