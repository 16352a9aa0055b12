package ports

import (
	"context"

	"github.com/jmoiron/sqlx"

	"videohub/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, identifier, password string) (*model.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, userUUID string) error
}

// SessionRepository : хранилище единственного действующего refresh-токена пользователя
type SessionRepository interface {
	SaveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID, refreshToken string) error
	RotateRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID, presented, next string) error
	ClearRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID string) error
}

// CredentialVerifier : одностороннее хэширование и проверка пароля
type CredentialVerifier interface {
	Hash(ctx context.Context, secret string) (string, error)
	Verify(ctx context.Context, secret, hashedSecret string) bool
}
