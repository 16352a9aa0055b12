package service

import (
	"context"
	"time"
)

// withTimeout : ограничивает обращения к БД и хэширование пароля
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
