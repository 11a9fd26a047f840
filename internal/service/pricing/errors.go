package pricing

import "errors"

var (
	// ErrInvalidRange возвращается, если диапазон дат дает меньше одной ночи
	ErrInvalidRange = errors.New("pricing: date range must span at least one night")

	// ErrInvalidGuests возвращается, если количество гостей меньше 1
	ErrInvalidGuests = errors.New("pricing: guest count must be a positive integer")

	// ErrMissingAccommodation возвращается при расчете custom бронирования без проживания
	ErrMissingAccommodation = errors.New("pricing: accommodation is required for a custom booking")

	// ErrMissingPackage возвращается при расчете пакетного бронирования без пакета
	ErrMissingPackage = errors.New("pricing: package is required for a package booking")

	// ErrUnknownMode возвращается при неизвестном режиме бронирования
	ErrUnknownMode = errors.New("pricing: unknown booking mode")
)
