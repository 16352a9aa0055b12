package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"videohub/config"
	"videohub/internal/model"
	"videohub/internal/ports"
	"videohub/internal/repository"
	"videohub/internal/security"
	"videohub/internal/util"
)

type AuthenticationService struct {
	db                sqlx.ExtContext
	userRepository    ports.UserRepository
	sessionRepository ports.SessionRepository
	jwtService        ports.JWTServiceInterface
	verifier          ports.CredentialVerifier
	unifyLoginErrors  bool
	timeout           time.Duration
}

func NewAuthenticationService(
	db sqlx.ExtContext,
	userRepository ports.UserRepository,
	sessionRepository ports.SessionRepository,
	jwtService ports.JWTServiceInterface,
	verifier ports.CredentialVerifier,
	cfg *config.AuthConfig,
) *AuthenticationService {
	timeout := config.MustDuration(cfg.RequestTimeout)

	return &AuthenticationService{
		db:                db,
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
		verifier:          verifier,
		unifyLoginErrors:  cfg.UnifyLoginErrors,
		timeout:           timeout,
	}
}

// Login аутентифицирует пользователя по username или email и паролю,
// выпускает новую пару токенов и сохраняет refresh-токен.
// Сохранённый ранее refresh-токен перезаписывается, так что у пользователя
// всегда не больше одной сессии, которую можно продлить.
//
// Параметры:
//   - ctx: контекст выполнения (для отмены и таймаутов)
//   - identifier: username или email, регистр не важен
//   - password: пароль в открытом виде
//
// Возвращает:
//   - model.LoginResult с публичным профилем и парой токенов
//   - NotFound, если пользователя нет (Unauthorized при auth.unify_login_errors)
//   - Unauthorized, если пароль неверный
func (s *AuthenticationService) Login(ctx context.Context, identifier, password string) (*model.LoginResult, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || password == "" {
		return nil, util.BadRequest("username or email and password are required", nil)
	}

	user, err := s.userRepository.FindByUsernameOrEmail(ctx, s.db, identifier, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] попытка входа несуществующего пользователя %q", identifier)
			if s.unifyLoginErrors {
				return nil, util.Unauthorized("invalid user credentials", nil)
			}
			return nil, util.NotFound("user does not exist", err)
		}
		return nil, util.Internal("[AuthService] не удалось найти пользователя", err)
	}

	if !s.verifier.Verify(ctx, password, user.PasswordHash) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, util.Internal("[AuthService] проверка пароля прервана", ctxErr)
		}
		log.Printf("[AuthService] неверный пароль для пользователя %s", user.UUID)
		return nil, util.Unauthorized("invalid user credentials", nil)
	}

	tokens, err := s.jwtService.GenerateTokensPair(user)
	if err != nil {
		return nil, util.Internal("[AuthService] ошибка генерации токенов", err)
	}

	if err := s.sessionRepository.SaveRefreshToken(ctx, s.db, user.UUID, tokens.RefreshToken); err != nil {
		return nil, util.Internal("[AuthService] ошибка сохранения refresh токена", err)
	}

	log.Printf("[AuthService] пользователь %s вошёл в систему", user.UUID)

	return &model.LoginResult{
		User:   user.Public(),
		Tokens: tokens,
	}, nil
}

// RefreshToken обновляет пару токенов по refresh-токену.
// Выполняет следующие требования к операции refresh:
//  1. Токен должен быть подписан ключом refresh-токенов и не просрочен.
//  2. Токен должен совпадать с тем, что сейчас сохранён у пользователя,
//     иначе это повтор уже использованного или вытесненного токена.
//  3. Замена токена выполняется как compare-and-set, поэтому из двух
//     одновременных запросов с одним токеном успешен только один.
//
// Возвращает:
//   - новую model.TokensPair
//   - Unauthorized в любом случае, когда токен нельзя принять
func (s *AuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if refreshToken == "" {
		return nil, util.Unauthorized("refresh token is required", nil)
	}

	claims, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, security.ErrTokenExpired) {
			log.Printf("[AuthService] refresh токен просрочен")
		} else {
			log.Printf("[AuthService] невалидный refresh токен: %v", err)
		}
		return nil, util.Unauthorized("invalid refresh token", err)
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db, claims.UserUUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, util.Unauthorized("invalid refresh token", err)
		}
		return nil, util.Internal("[AuthService] не удалось найти пользователя", err)
	}

	if !user.HasRefreshToken(refreshToken) {
		log.Printf("[AuthService] refresh токен пользователя %s уже использован или отозван", user.UUID)
		return nil, util.Unauthorized("refresh token is expired or used", nil)
	}

	tokens, err := s.jwtService.GenerateTokensPair(user)
	if err != nil {
		return nil, util.Internal("[AuthService] ошибка генерации токенов", err)
	}

	err = s.sessionRepository.RotateRefreshToken(ctx, s.db, user.UUID, refreshToken, tokens.RefreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrStaleRefreshToken) {
			log.Printf("[AuthService] refresh токен пользователя %s заменён параллельным запросом", user.UUID)
			return nil, util.Unauthorized("refresh token is expired or used", err)
		}
		return nil, util.Internal("[AuthService] не удалось сохранить refresh токен", err)
	}

	return tokens, nil
}

// Logout завершает сессию: удаляет сохранённый refresh-токен.
// Повторный logout не считается ошибкой
func (s *AuthenticationService) Logout(ctx context.Context, userUUID string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if userUUID == "" {
		return util.Unauthorized("unauthorized request", nil)
	}

	if err := s.sessionRepository.ClearRefreshToken(ctx, s.db, userUUID); err != nil {
		return util.Internal("[AuthService] не удалось завершить сессию", err)
	}

	log.Printf("[AuthService] пользователь %s вышел из системы", userUUID)
	return nil
}
