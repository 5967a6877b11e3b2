package clients

import (
	"context"
	"net/http"
	"net/url"

	"github.com/munkush/go-clicker/dispatcher-service/internal/models"
)

// ClickerClient — адаптер clicker-service: запись и чтение кликов пользователя.
type ClickerClient struct {
	caller
}

// SaveClick записывает событие клика. Владелец — click.Username.
func (c *ClickerClient) SaveClick(ctx context.Context, click models.Click) error {
	return c.doJSON(ctx, http.MethodPost, "/clicks", nil, click, nil)
}

// ClicksByUser возвращает все клики пользователя в порядке вставки.
func (c *ClickerClient) ClicksByUser(ctx context.Context, username string) ([]models.Click, error) {
	q := url.Values{"username": {username}}

	var clicks []models.Click
	if err := c.doJSON(ctx, http.MethodGet, "/clicks", q, nil, &clicks); err != nil {
		return nil, err
	}
	return clicks, nil
}
