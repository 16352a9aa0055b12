package ports

import (
	"videohub/internal/model"
	"videohub/internal/security"
)

type JWTServiceInterface interface {
	GenerateTokensPair(user *model.User) (*model.TokensPair, error)
	ParseAccessToken(tokenStr string) (*security.AccessClaims, error)
	ParseRefreshToken(tokenStr string) (*security.RefreshClaims, error)
}
