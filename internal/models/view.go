package models

// View — агрегат для отрисовки главной страницы.
// Собирается заново на каждый запрос и нигде не сохраняется.
//
// Codes заполняется всегда и не скоупится по пользователю; Clicks — только
// при известной identity. Отсутствие любой из секций означает частичную
// деградацию, а не ошибку запроса.
type View struct {
	Login  string
	Codes  []UserRecord
	Clicks []Click
}
