package security

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes : bcrypt учитывает только первые 72 байта пароля
const MaxPasswordBytes = 72

// CheckPassword : true, если пароль соответствует хэшу
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BcryptVerifier проверяет пароли через bcrypt с заданной стоимостью
type BcryptVerifier struct {
	cost int
}

func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (v *BcryptVerifier) Hash(ctx context.Context, secret string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify : на несовпадение или битый хэш возвращает false, а не ошибку
func (v *BcryptVerifier) Verify(ctx context.Context, secret, hashedSecret string) bool {
	if ctx.Err() != nil || hashedSecret == "" {
		return false
	}
	return CheckPassword(secret, hashedSecret)
}
