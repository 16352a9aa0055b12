package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"videohub/internal/model/requestresponse"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : пишет ответ об ошибке в стандартном формате
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

// WriteError : переводит ошибку сервиса в HTTP-ответ.
// Внутренние подробности клиенту не отдаются
func WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("внутренняя ошибка: %v", err)
	}
	HandleError(w, PublicMessage(err), status)
}
