package models

import (
	"time"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// HistoryResponse локальная история бронирований этого устройства.
// Не синхронизируется с бэкендом и не является источником истины.
type HistoryResponse struct {
	Source   string                  `json:"source"` // всегда "local"
	Bookings []HistoryRecordResponse `json:"bookings"`
}

// HistoryRecordResponse запись истории. Заполнено ровно одно из Package/Custom.
type HistoryRecordResponse struct {
	Reference   string                 `json:"reference"`
	OrderNumber string                 `json:"orderNumber,omitempty"`
	BookingType string                 `json:"bookingType"`
	Package     *PackageHistoryDetails `json:"package,omitempty"`
	Custom      *CustomHistoryDetails  `json:"custom,omitempty"`
	Guests      int                    `json:"guests"`
	TotalPrice  float64                `json:"totalPrice"`
	Customer    CustomerRequest        `json:"customer"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// PackageHistoryDetails состав пакетного бронирования
type PackageHistoryDetails struct {
	PackageID     int64    `json:"packageId"`
	PackageName   string   `json:"packageName"`
	Dates         string   `json:"dates"`
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
}

// CustomHistoryDetails состав custom бронирования
type CustomHistoryDetails struct {
	CheckIn       string   `json:"checkIn"`
	CheckOut      string   `json:"checkOut"`
	Nights        int      `json:"nights"`
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
	Services      []string `json:"services"`
}

// HistorySourceLocal метка локальной истории
const HistorySourceLocal = "local"

// FromDomainHistory конвертирует список записей в DTO
func FromDomainHistory(records []domain.HistoryRecord) *HistoryResponse {
	resp := &HistoryResponse{
		Source:   HistorySourceLocal,
		Bookings: make([]HistoryRecordResponse, 0, len(records)),
	}

	for _, r := range records {
		item := HistoryRecordResponse{
			Reference:   r.Reference,
			OrderNumber: r.OrderNumber,
			Guests:      r.Guests,
			TotalPrice:  r.TotalPrice,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
			Customer: CustomerRequest{
				Name:            r.Customer.Name,
				Email:           r.Customer.Email,
				Phone:           r.Customer.Phone,
				WhatsApp:        r.Customer.WhatsApp,
				SpecialRequests: r.Customer.SpecialRequests,
			},
		}

		switch d := r.Details.(type) {
		case domain.PackageDetails:
			item.BookingType = string(domain.ModePackage)
			item.Package = &PackageHistoryDetails{
				PackageID:     d.PackageID,
				PackageName:   d.PackageName,
				Dates:         d.Dates,
				Accommodation: d.Accommodation,
				Activities:    nonNilStrings(d.Activities),
			}
		case domain.CustomDetails:
			item.BookingType = string(domain.ModeCustom)
			item.Custom = &CustomHistoryDetails{
				CheckIn:       d.CheckIn,
				CheckOut:      d.CheckOut,
				Nights:        d.Nights,
				Accommodation: d.Accommodation,
				Activities:    nonNilStrings(d.Activities),
				Services:      nonNilStrings(d.Services),
			}
		}

		resp.Bookings = append(resp.Bookings, item)
	}

	return resp
}
