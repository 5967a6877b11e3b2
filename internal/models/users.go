package models

// UserRecord — зарегистрированная пара логин/код из user-service.
type UserRecord struct {
	Login string `json:"login"`
	Code  string `json:"code"`
}

// Registration — результат двухшаговой регистрации (generate + create).
type Registration struct {
	Login string `json:"login"`
	Code  string `json:"code"`
}
