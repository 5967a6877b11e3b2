package models

// Click — событие клика (x, y), привязанное к пользователю.
// Координаты передаются строками — так их кодирует браузерная форма
// и в таком виде их хранит clicker-service.
type Click struct {
	X        string `json:"x"`
	Y        string `json:"y"`
	Username string `json:"username,omitempty"`
}
