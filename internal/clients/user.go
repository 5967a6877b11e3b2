package clients

import (
	"context"
	"net/http"

	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
)

// UserClient — адаптер user-service: валидация токенов, резолв имени,
// логин и учёт зарегистрированных пар логин/код.
type UserClient struct {
	caller
}

type tokenRequest struct {
	Token string `json:"token"`
}

type credentialsRequest struct {
	Login string `json:"login"`
	Code  string `json:"code"`
}

// ValidateToken спрашивает у user-service, действителен ли токен.
// Ответ апстрима — голый JSON bool.
func (c *UserClient) ValidateToken(ctx context.Context, token string) (bool, error) {
	var valid bool
	if err := c.doJSON(ctx, http.MethodPost, "/validate", nil, tokenRequest{Token: token}, &valid); err != nil {
		return false, err
	}
	return valid, nil
}

// Username резолвит действительный токен в имя пользователя.
func (c *UserClient) Username(ctx context.Context, token string) (string, error) {
	var username string
	if err := c.doJSON(ctx, http.MethodPost, "/username", nil, tokenRequest{Token: token}, &username); err != nil {
		return "", err
	}
	return username, nil
}

// Login обменивает пару логин/код на пару токенов.
// Отклонённый логин приходит как *StatusError с сообщением апстрима.
func (c *UserClient) Login(ctx context.Context, login, code string) (models.TokenPair, error) {
	var pair models.TokenPair
	if err := c.doJSON(ctx, http.MethodPost, "/login", nil, credentialsRequest{Login: login, Code: code}, &pair); err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

// CreateUser регистрирует пару логин/код.
// Конфликт по логину приходит как *StatusError с сообщением апстрима.
func (c *UserClient) CreateUser(ctx context.Context, login, code string) error {
	return c.doJSON(ctx, http.MethodPost, "/users", nil, credentialsRequest{Login: login, Code: code}, nil)
}

// ListUsers возвращает все зарегистрированные пары логин/код.
func (c *UserClient) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	var records []models.UserRecord
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
