package booking

import "errors"

var (
	// ErrNotStarted сценарий бронирования в сессии не запущен
	ErrNotStarted = errors.New("booking flow not started")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotFound элемент каталога или заказ не найден
	ErrNotFound = errors.New("not found")

	// ErrUnavailable выбранный пакет недоступен
	ErrUnavailable = errors.New("package is not available")

	// ErrTransitionRefused условие перехода на следующий шаг не выполнено
	ErrTransitionRefused = errors.New("cannot continue: current step is incomplete")

	// ErrConflict операция недоступна в текущем состоянии сценария
	ErrConflict = errors.New("operation not allowed in current booking state")

	// ErrBackendUnavailable бэкенд заказов недоступен
	ErrBackendUnavailable = errors.New("order backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
