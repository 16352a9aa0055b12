package ports

import (
	"context"
	"io"
)

// MediaStorage : внешнее хранилище медиафайлов, возвращает URL сохранённого объекта
type MediaStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
