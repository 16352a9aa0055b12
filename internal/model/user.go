package model

import "time"

// User : учётная запись (identity). Хэш пароля и текущий refresh-токен
// никогда не сериализуются в JSON
type User struct {
	UUID                 string     `db:"uuid" json:"uuid"`
	Username             string     `db:"username" json:"username"`
	Email                string     `db:"email" json:"email"`
	Fullname             string     `db:"fullname" json:"fullname"`
	Avatar               string     `db:"avatar" json:"avatar"`
	CoverImage           string     `db:"cover_image" json:"coverImage"`
	PasswordHash         string     `db:"password_hash" json:"-"`
	RefreshToken         *string    `db:"refresh_token" json:"-"`
	RefreshTokenIssuedAt *time.Time `db:"refresh_token_issued_at" json:"-"`
	CreatedAt            time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updatedAt"`
}

// Public : копия пользователя без хэша пароля и данных сессии
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	public := *u
	public.PasswordHash = ""
	public.RefreshToken = nil
	public.RefreshTokenIssuedAt = nil
	return &public
}

// HasRefreshToken : true, если token совпадает с сохранённым refresh-токеном
func (u *User) HasRefreshToken(token string) bool {
	return u.RefreshToken != nil && token != "" && *u.RefreshToken == token
}
