package clients

import (
	"context"
	"net/http"
)

// GeneratorClient — адаптер generator-service: выпуск одноразового
// регистрационного кода под логин.
type GeneratorClient struct {
	caller
}

type generateRequest struct {
	Login string `json:"login"`
}

// GenerateCode выпускает код для логина. Ответ апстрима — голая JSON-строка.
func (c *GeneratorClient) GenerateCode(ctx context.Context, login string) (string, error) {
	var code string
	if err := c.doJSON(ctx, http.MethodPost, "/generate", nil, generateRequest{Login: login}, &code); err != nil {
		return "", err
	}
	return code, nil
}
