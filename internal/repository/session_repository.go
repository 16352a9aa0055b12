package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"videohub/config"
	"videohub/internal/util"
)

// SessionRepository хранит единственный действующий refresh-токен пользователя
// в колонке users.refresh_token
type SessionRepository struct {
	*config.Database
}

func NewSessionRepository(database *config.Database) *SessionRepository {
	return &SessionRepository{database}
}

// SaveRefreshToken сохраняет refresh-токен, перезаписывая предыдущий.
// Вход с нового устройства тем самым отзывает refresh-токен старой сессии
func (r *SessionRepository) SaveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID, refreshToken string) error {
	query := `
		UPDATE users
		SET refresh_token = $2, refresh_token_issued_at = NOW()
		WHERE uuid = $1
	`

	result, err := exec.ExecContext(ctx, query, userUUID, refreshToken)
	if err != nil {
		return util.LogError("[SessionRepo] не удалось сохранить refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SessionRepo] не удалось проверить, сохранён ли токен", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// RotateRefreshToken заменяет presented на next только если presented всё ещё сохранён.
// Один UPDATE с условием по старому значению работает как compare-and-set:
// из двух конкурирующих запросов с одним и тем же токеном строку обновит только один,
// второй получит ErrStaleRefreshToken
func (r *SessionRepository) RotateRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID, presented, next string) error {
	query := `
		UPDATE users
		SET refresh_token = $3, refresh_token_issued_at = NOW()
		WHERE uuid = $1 AND refresh_token = $2
	`

	result, err := exec.ExecContext(ctx, query, userUUID, presented, next)
	if err != nil {
		return util.LogError("[SessionRepo] не удалось заменить refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SessionRepo] не удалось проверить, заменён ли токен", err)
	}
	if rowsAffected == 0 {
		return ErrStaleRefreshToken
	}

	return nil
}

// ClearRefreshToken удаляет refresh-токен. Повторный вызов не считается ошибкой
func (r *SessionRepository) ClearRefreshToken(ctx context.Context, exec sqlx.ExtContext, userUUID string) error {
	query := `
		UPDATE users
		SET refresh_token = NULL, refresh_token_issued_at = NULL
		WHERE uuid = $1
	`

	if _, err := exec.ExecContext(ctx, query, userUUID); err != nil {
		return util.LogError("[SessionRepo] не удалось удалить refresh токен", err)
	}

	return nil
}
