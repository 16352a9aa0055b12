package requestresponse

// LoginRequest : тело запроса на аутентификацию. Достаточно username или email
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@x.com"`
	Password string `json:"password" example:"secretpw"`
}

// LoginResponse : ответ на успешную аутентификацию
type LoginResponse struct {
	Data LoginData `json:"data"`
}

type LoginData struct {
	User         UserData `json:"user"`
	AccessToken  string   `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string   `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshTokenRequest : запрос на обновление пары токенов (если refresh-токена нет в cookie)
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshTokenResponse : ответ на успешное обновление
type RefreshTokenResponse struct {
	Data struct {
		AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	} `json:"data"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Data struct {
		LoggedOut bool `json:"loggedOut" example:"true"`
	} `json:"data"`
}
