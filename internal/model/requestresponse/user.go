package requestresponse

import (
	"time"

	"videohub/internal/model"
)

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"all fields are required"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// UserData : публичный профиль пользователя
type UserData struct {
	UUID       string `json:"uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	Username   string `json:"username" example:"alice"`
	Email      string `json:"email" example:"alice@x.com"`
	Fullname   string `json:"fullname" example:"Alice Liddell"`
	Avatar     string `json:"avatar" example:"https://cdn.example.com/avatars/alice.png"`
	CoverImage string `json:"coverImage,omitempty" example:"https://cdn.example.com/covers/alice.png"`
	CreatedAt  string `json:"createdAt" example:"2025-08-23T12:34:56Z"`
	UpdatedAt  string `json:"updatedAt" example:"2025-08-23T12:34:56Z"`
}

// UserDataFromModel : конвертирует model.User в UserData
func UserDataFromModel(user *model.User) UserData {
	return UserData{
		UUID:       user.UUID,
		Username:   user.Username,
		Email:      user.Email,
		Fullname:   user.Fullname,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  user.UpdatedAt.Format(time.RFC3339),
	}
}

// UserResponse : успешный ответ с данными пользователя
type UserResponse struct {
	Data UserData `json:"data"`
}

// UpdateAccountRequest : тело запроса на обновление профиля
type UpdateAccountRequest struct {
	Fullname string `json:"fullname" example:"Alice Liddell"`
	Email    string `json:"email,omitempty" example:"alice@x.com"`
}

// ChangePasswordRequest : тело запроса на смену пароля
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" example:"secretpw"`
	NewPassword string `json:"newPassword" example:"n3w-secretpw"`
}

// ChangePasswordResponse : успешный ответ
type ChangePasswordResponse struct {
	Data struct {
		Updated bool `json:"updated" example:"true"`
	} `json:"data"`
}
