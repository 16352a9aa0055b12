package security

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"videohub/internal/model"
	"videohub/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// AccessTokenParser : проверка access-токена
type AccessTokenParser interface {
	ParseAccessToken(tokenStr string) (*AccessClaims, error)
}

// IdentityResolver : находит пользователя по id из access-токена
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, uuid string) (*model.User, error)
}

// JWTMiddleware пропускает запрос дальше только с валидным access-токеном.
// В контекст кладётся публичный профиль пользователя
func JWTMiddleware(parser AccessTokenParser, resolver IdentityResolver) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(parser, resolver, next))
	}
}

func handleAuthentication(parser AccessTokenParser, resolver IdentityResolver, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		token := ExtractAccessToken(request)
		if token == "" {
			util.HandleError(writer, "unauthorized request", http.StatusUnauthorized)
			return
		}

		claims, err := parser.ParseAccessToken(token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				log.Printf("[JWT] access токен просрочен")
			} else {
				log.Printf("[JWT] невалидный access токен: %v", err)
			}
			util.HandleError(writer, "invalid access token", http.StatusUnauthorized)
			return
		}

		user, err := resolver.ResolveIdentity(request.Context(), claims.UserUUID)
		if err != nil {
			switch util.KindOf(err) {
			case util.KindNotFound, util.KindUnauthorized:
				log.Printf("[JWT] пользователь %s из токена не найден", claims.UserUUID)
				util.HandleError(writer, "invalid access token", http.StatusUnauthorized)
			default:
				log.Printf("[JWT] ошибка получения пользователя: %v", err)
				util.HandleError(writer, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		next.ServeHTTP(writer, request.WithContext(WithUser(request.Context(), user)))
	}
}

// ExtractAccessToken : сначала cookie accessToken, затем заголовок Authorization: Bearer
func ExtractAccessToken(request *http.Request) string {
	if cookie, err := request.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authorizationHeader := request.Header.Get("Authorization")
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
}

// WithUser : кладёт публичный профиль в контекст
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user.Public())
}

func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, util.Unauthorized("unauthorized request", nil)
	}
	return user, nil
}
