package ports

import (
	"context"

	"github.com/jmoiron/sqlx"

	"videohub/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error)
	UpdateFullname(ctx context.Context, exec sqlx.ExtContext, uuid, fullname string) (*model.User, error)
	UpdateAvatar(ctx context.Context, exec sqlx.ExtContext, uuid, avatarURL string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, exec sqlx.ExtContext, uuid, coverImageURL string) (*model.User, error)
	UpdatePassword(ctx context.Context, exec sqlx.ExtContext, uuid, newPasswordHash string) error
}

type UserService interface {
	Register(ctx context.Context, input *model.RegisterInput) (*model.User, error)
	GetUser(ctx context.Context, uuid string) (*model.User, error)
	UpdateAccount(ctx context.Context, uuid, fullname, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, uuid string, file *model.MediaFile) (*model.User, error)
	UpdateCoverImage(ctx context.Context, uuid string, file *model.MediaFile) (*model.User, error)
	ChangePassword(ctx context.Context, uuid, oldPassword, newPassword string) error
}
