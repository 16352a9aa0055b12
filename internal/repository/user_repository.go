package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"videohub/config"
	"videohub/internal/model"
	"videohub/internal/util"
)

const userColumns = `uuid, username, email, fullname, avatar, cover_image, password_hash,
	refresh_token, refresh_token_issued_at, created_at, updated_at`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, username, email, fullname, avatar, cover_image, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + userColumns

	createdUser := &model.User{}
	err := exec.QueryRowxContext(ctx, query,
		user.UUID,
		user.Username,
		user.Email,
		user.Fullname,
		user.Avatar,
		user.CoverImage,
		user.PasswordHash,
	).StructScan(createdUser)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByUsernameOrEmail : ищет пользователя по username или email без учёта регистра.
// Пустые значения в поиске не участвуют
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 <> '' AND LOWER(username) = LOWER($1))
		   OR ($2 <> '' AND LOWER(email) = LOWER($2))
		LIMIT 1
	`
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, username, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по username/email", err)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail : проверяет, занят ли username или email
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($2)
		)
	`
	var exists bool
	err := sqlx.GetContext(ctx, exec, &exists, query, username, email)
	if err != nil {
		return false, util.LogError("[UserRepo] ошибка проверки существования пользователя", err)
	}
	return exists, nil
}

// UpdateFullname : обновляет отображаемое имя
func (r *UserRepository) UpdateFullname(ctx context.Context, exec sqlx.ExtContext, id, fullname string) (*model.User, error) {
	return r.updateColumn(ctx, exec, id, "fullname", fullname)
}

// UpdateAvatar : сохраняет новый URL аватара
func (r *UserRepository) UpdateAvatar(ctx context.Context, exec sqlx.ExtContext, id, avatarURL string) (*model.User, error) {
	return r.updateColumn(ctx, exec, id, "avatar", avatarURL)
}

// UpdateCoverImage : сохраняет новый URL обложки
func (r *UserRepository) UpdateCoverImage(ctx context.Context, exec sqlx.ExtContext, id, coverImageURL string) (*model.User, error) {
	return r.updateColumn(ctx, exec, id, "cover_image", coverImageURL)
}

// updateColumn : column всегда константа из этого файла, пользовательский ввод сюда не попадает
func (r *UserRepository) updateColumn(ctx context.Context, exec sqlx.ExtContext, id, column, value string) (*model.User, error) {
	query := `
		UPDATE users
		SET ` + column + ` = $2, updated_at = NOW()
		WHERE uuid = $1
		RETURNING ` + userColumns

	var user model.User
	err := exec.QueryRowxContext(ctx, query, id, value).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось обновить пользователя", err)
	}
	return &user, nil
}

// UpdatePassword : меняет хэш пароля пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, id, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE uuid = $1`
	result, err := exec.ExecContext(ctx, query, id, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пароль", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] не удалось проверить, обновлён ли пароль", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
