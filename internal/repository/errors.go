package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrUserNotFound      = errors.New("пользователь не найден")
	ErrUserAlreadyExists = errors.New("пользователь с таким username или email уже существует")
	ErrStaleRefreshToken = errors.New("refresh токен уже заменён или отозван")
	uniqueViolationCode  = pq.ErrorCode("23505")
)

// isUniqueViolation : true, если postgres отклонил запись из-за уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
