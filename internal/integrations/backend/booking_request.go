package backend

import (
	"encoding/json"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// BookingRequest тело запроса на создание бронирования.
// Реализации сами проставляют booking_type при сериализации.
type BookingRequest interface {
	BookingType() domain.BookingMode
}

// CustomerFields контактные данные клиента в плоском виде
type CustomerFields struct {
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	CustomerWhatsApp string `json:"customer_whatsapp,omitempty"`
	SpecialRequests  string `json:"special_requests,omitempty"`
}

// PackageDetailsPayload состав пакета
type PackageDetailsPayload struct {
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
}

// PackageBookingRequest бронирование готового пакета
type PackageBookingRequest struct {
	PackageID      int64                 `json:"package_id"`
	PackageName    string                `json:"package_name"`
	PackageDetails PackageDetailsPayload `json:"package_details"`
	Dates          string                `json:"dates"`
	Guests         int                   `json:"guests"`
	TotalPrice     float64               `json:"total_price"`
	CustomerFields
}

// BookingType всегда package
func (PackageBookingRequest) BookingType() domain.BookingMode { return domain.ModePackage }

// MarshalJSON добавляет booking_type
func (r PackageBookingRequest) MarshalJSON() ([]byte, error) {
	type plain PackageBookingRequest
	return json.Marshal(struct {
		BookingType domain.BookingMode `json:"booking_type"`
		plain
	}{r.BookingType(), plain(r)})
}

// CustomBookingRequest бронирование, собранное из отдельных позиций
type CustomBookingRequest struct {
	CheckInDate       string  `json:"check_in_date"`
	CheckOutDate      string  `json:"check_out_date"`
	AccommodationID   int64   `json:"accommodation_id"`
	AccommodationType string  `json:"accommodation_type"`
	Activities        []int64 `json:"activities"`
	Services          []int64 `json:"services"`
	Guests            int     `json:"guests"`
	TotalPrice        float64 `json:"total_price"`
	CustomerFields
}

// BookingType всегда custom
func (CustomBookingRequest) BookingType() domain.BookingMode { return domain.ModeCustom }

// MarshalJSON добавляет booking_type
func (r CustomBookingRequest) MarshalJSON() ([]byte, error) {
	type plain CustomBookingRequest
	return json.Marshal(struct {
		BookingType domain.BookingMode `json:"booking_type"`
		plain
	}{r.BookingType(), plain(r)})
}
