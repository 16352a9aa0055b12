package ports

import (
	"context"

	"videohub/internal/model"
)

// CacheRepository : Redis слой для публичных профилей
type CacheRepository interface {
	SetUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, uuid string) (*model.User, error)
	DeleteUser(ctx context.Context, uuid string) error
}
