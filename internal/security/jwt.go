package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"videohub/config"
	"videohub/internal/model"
	"videohub/internal/util"
)

var (
	// ErrTokenExpired : подпись верна, но срок действия истёк. Клиенту нужно обновить токен
	ErrTokenExpired = errors.New("срок действия токена истёк")
	// ErrTokenInvalid : подпись неверна или токен повреждён. Клиенту нужно войти заново
	ErrTokenInvalid = errors.New("невалидный токен")
)

// AccessClaims : содержимое короткоживущего access-токена
type AccessClaims struct {
	UserUUID string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	jwt.RegisteredClaims
}

// RefreshClaims : содержимое долгоживущего refresh-токена.
// jti делает каждый выпущенный токен уникальным даже в пределах одной секунды
type RefreshClaims struct {
	UserUUID string `json:"id"`
	jwt.RegisteredClaims
}

var signingMethod = jwt.SigningMethodHS512

type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("[JWT] ключи подписи не заданы")
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, fmt.Errorf("[JWT] access и refresh токены должны подписываться разными ключами")
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("[JWT] ошибка парсинга access_token_ttl", err)
	}
	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("[JWT] ошибка парсинга refresh_token_ttl", err)
	}

	return &JWTService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        cfg.Issuer,
		now:           time.Now,
	}, nil
}

// WithClock : подменяет источник времени (для тестов)
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func (s *JWTService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *JWTService) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.issuer,
	}
}

// GenerateAccessToken : подписывает access-токен ключом для access-токенов
func (s *JWTService) GenerateAccessToken(user *model.User) (string, time.Time, error) {
	claims := AccessClaims{
		UserUUID:         user.UUID,
		Email:            user.Email,
		Username:         user.Username,
		Fullname:         user.Fullname,
		RegisteredClaims: s.registeredClaims(s.accessTTL),
	}

	token, err := Encode(claims, s.accessSecret)
	if err != nil {
		return "", time.Time{}, util.LogError("[JWT] ошибка подписи access токена", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// GenerateRefreshToken : подписывает refresh-токен отдельным ключом
func (s *JWTService) GenerateRefreshToken(userUUID string) (string, time.Time, error) {
	claims := RefreshClaims{
		UserUUID:         userUUID,
		RegisteredClaims: s.registeredClaims(s.refreshTTL),
	}
	claims.ID = uuid.New().String()

	token, err := Encode(claims, s.refreshSecret)
	if err != nil {
		return "", time.Time{}, util.LogError("[JWT] ошибка подписи refresh токена", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

func (s *JWTService) GenerateTokensPair(user *model.User) (*model.TokensPair, error) {
	accessToken, accessExp, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := s.GenerateRefreshToken(user.UUID)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

func (s *JWTService) ParseAccessToken(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.decode(tokenStr, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.UserUUID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (s *JWTService) ParseRefreshToken(tokenStr string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.decode(tokenStr, claims, s.refreshSecret); err != nil {
		return nil, err
	}
	if claims.UserUUID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Encode : подписывает произвольный набор claims
func Encode(claims jwt.Claims, secret []byte) (string, error) {
	return jwt.NewWithClaims(signingMethod, claims).SignedString(secret)
}

// decode : проверяет подпись, алгоритм и срок действия.
// Возвращает ErrTokenExpired или ErrTokenInvalid
func (s *JWTService) decode(tokenStr string, claims jwt.Claims, secret []byte) error {
	if tokenStr == "" {
		return ErrTokenInvalid
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, options...)

	switch {
	case err == nil && token.Valid:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenInvalid
	}
}
