package pkg

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// internalErrorMessage, 500 yanıtlarında client'a gösterilen tek mesaj.
// Gerçek hata sadece loglanır.
const internalErrorMessage = "internal server error"

// ErrorResponse, tüm hata yanıtlarının gövdesi.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON, verilen değeri olduğu gibi JSON olarak yazar.
// Frontend yanıtların çıplak nesne/dizi olmasını bekler — zarf (envelope) yok.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[http] failed to encode response: %v", err)
	}
}

// Error, hata yanıtı gönderir.
// Domain error'ları uygun HTTP status'a çevrilir; tanınmayan her hata
// 500 + genel mesaj olarak döner ve detayı loglanır.
func Error(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)

	// Wrap edilmiş DomainError'ın sadece kendi mesajı gösterilir,
	// üst katmanların eklediği bağlam (ör: "discord: ...") client'a sızmaz.
	message := err.Error()
	var de *DomainError
	if errors.As(err, &de) {
		message = de.Message
	}
	if status == http.StatusInternalServerError {
		log.Printf("[http] internal error: %v", err)
		message = internalErrorMessage
	}

	ErrorWithMessage(w, status, message)
}

// ErrorWithMessage, özel mesajlı hata yanıtı gönderir.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// InternalError, genel 500 yanıtı yazar (panic recovery gibi err'in olmadığı yerler için).
func InternalError(w http.ResponseWriter) {
	ErrorWithMessage(w, http.StatusInternalServerError, internalErrorMessage)
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
// errors.Is wrap edilmiş error'ları da yakalar.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrUpstream):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
