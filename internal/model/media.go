package model

import "io"

// MediaFile : загруженный клиентом файл, который нужно отправить во внешнее хранилище
type MediaFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// RegisterInput : данные формы регистрации
type RegisterInput struct {
	Fullname   string
	Email      string
	Username   string
	Password   string
	Avatar     *MediaFile
	CoverImage *MediaFile
}
