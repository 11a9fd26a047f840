package start_booking

import "errors"

var (
	// ErrSuperseded пока загружался каталог, в сессии начался новый сценарий.
	// Результат этой загрузки отброшен.
	ErrSuperseded = errors.New("start_booking: superseded by a newer booking flow")

	// ErrSubmissionInProgress текущее бронирование сессии еще отправляется
	ErrSubmissionInProgress = errors.New("start_booking: booking submission in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_booking: internal error")
)
