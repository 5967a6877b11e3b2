// Модели REST-слоя диспетчера: зеркалят JSON-контракты апстрим-сервисов.
package models

// TokenPair — пара токенов, которую user-service возвращает при логине.
// Имена полей повторяют проводной формат апстрима.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
