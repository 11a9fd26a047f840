package wizard

import "errors"

var (
	// ErrTransitionRefused переход запрещен: условие выхода с текущего шага не выполнено
	ErrTransitionRefused = errors.New("wizard: transition refused")

	// ErrInvalidState операция недоступна в текущем состоянии
	ErrInvalidState = errors.New("wizard: operation not allowed in current state")

	// ErrModeNotSelected операция требует выбранного режима бронирования
	ErrModeNotSelected = errors.New("wizard: booking mode not selected")

	// ErrWrongMode операция относится к другому режиму бронирования
	ErrWrongMode = errors.New("wizard: operation does not apply to current booking mode")

	// ErrInvalidMode неизвестный режим бронирования
	ErrInvalidMode = errors.New("wizard: invalid booking mode")

	// ErrUnknownItem элемент каталога не найден
	ErrUnknownItem = errors.New("wizard: catalog item not found")

	// ErrPackageUnavailable пакет распродан
	ErrPackageUnavailable = errors.New("wizard: package is not available")

	// ErrInvalidDates некорректный диапазон дат
	ErrInvalidDates = errors.New("wizard: invalid date range")

	// ErrInvalidGuests некорректное количество гостей
	ErrInvalidGuests = errors.New("wizard: invalid guest count")

	// ErrSubmissionInProgress отправка уже выполняется
	ErrSubmissionInProgress = errors.New("wizard: submission already in progress")

	// ErrCustomerDetails не заполнены обязательные данные клиента
	ErrCustomerDetails = errors.New("wizard: customer details incomplete")
)
