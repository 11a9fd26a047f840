package submit_booking

import "errors"

var (
	// ErrNotStarted сценарий бронирования в сессии не запущен
	ErrNotStarted = errors.New("submit_booking: booking flow not started")

	// ErrSubmissionInProgress отправка уже выполняется; повторная отправка отклонена
	ErrSubmissionInProgress = errors.New("submit_booking: submission already in progress")

	// ErrInvalidInput не заполнены обязательные данные клиента
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInvalidState отправка недоступна в текущем состоянии
	ErrInvalidState = errors.New("submit_booking: submission not allowed in current state")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// Сообщения для пользователя при неуспешной отправке
const (
	MessageConnectivity    = "We could not reach the booking service. Please check your connection and try again."
	MessageRejected        = "Your booking could not be submitted. Please try again."
	MessageInvalidResponse = "The booking service returned an unexpected response. Please contact us before trying again."
	MessageInternal        = "Your booking could not be prepared. Please review your selection and try again."
)
