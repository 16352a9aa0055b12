package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"videohub/internal/model"
	"videohub/internal/model/requestresponse"
	"videohub/internal/util"
)

const maxUploadSize = 10 << 20

// decodeJSON обрабатывает декодирование JSON и возвращает ответ об ошибке, если декодирование не удалось.
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// sendErrorResponse отправляет ответ об ошибке JSON с указанным кодом статуса и сообщением
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	util.HandleError(w, message, statusCode)
}

// sendJSON отправляет успешный ответ
func sendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func userResponse(user *model.User) requestresponse.UserResponse {
	return requestresponse.UserResponse{Data: requestresponse.UserDataFromModel(user)}
}

// readMediaFile достаёт файл из multipart-формы. Если поля нет, возвращает nil без ошибки.
// Вызывающий обязан закрыть файл через возвращённую функцию
func readMediaFile(r *http.Request, field string) (*model.MediaFile, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		sniff := make([]byte, 512)
		n, _ := io.ReadFull(file, sniff)
		contentType = http.DetectContentType(sniff[:n])
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			file.Close()
			return nil, func() {}, err
		}
	}

	return &model.MediaFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}, func() { file.Close() }, nil
}

// parseMultipart ограничивает размер тела и разбирает форму
func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return false
	}
	return true
}
