package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сериализация)
	ErrInternal = errors.New("backend client: internal error")

	// ErrConnectivity запрос не завершился: сеть, DNS, таймаут
	ErrConnectivity = errors.New("backend client: connectivity error")

	// ErrInvalidResponse ответ не соответствует контракту
	ErrInvalidResponse = errors.New("backend client: invalid response")

	// ErrNotFound ресурс не найден
	ErrNotFound = errors.New("backend client: not found")

	// ErrRejected бэкенд отклонил бронирование (non-2xx на POST)
	ErrRejected = errors.New("backend client: booking rejected")
)

// RejectedError отказ бэкенда с сообщением из тела ответа
type RejectedError struct {
	StatusCode int
	Message    string // пустое, если бэкенд не вернул структурированную ошибку
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrRejected, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrRejected, e.StatusCode, e.Message)
}

// Is позволяет сопоставлять ошибку через errors.Is(err, ErrRejected)
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
