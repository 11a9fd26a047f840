package history

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// snapshot JSON-представление записи истории. Детали бронирования хранятся
// как размеченное объединение: mode + ровно одно из package/custom.
type snapshot struct {
	Mode        domain.BookingMode `json:"mode"`
	Package     *packageSnapshot   `json:"package,omitempty"`
	Custom      *customSnapshot    `json:"custom,omitempty"`
	OrderNumber string             `json:"order_number,omitempty"`
	Guests      int                `json:"guests"`
	TotalPrice  float64            `json:"total_price"`
	Customer    customerSnapshot   `json:"customer"`
	Status      string             `json:"status"`
}

type packageSnapshot struct {
	PackageID     int64    `json:"package_id"`
	PackageName   string   `json:"package_name"`
	Dates         string   `json:"dates"`
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
}

type customSnapshot struct {
	CheckIn       string   `json:"check_in"`
	CheckOut      string   `json:"check_out"`
	Nights        int      `json:"nights"`
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
	Services      []string `json:"services"`
}

type customerSnapshot struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	WhatsApp        string `json:"whatsapp,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func encodeSnapshot(record domain.HistoryRecord) ([]byte, error) {
	s := snapshot{
		OrderNumber: record.OrderNumber,
		Guests:      record.Guests,
		TotalPrice:  record.TotalPrice,
		Status:      record.Status,
		Customer: customerSnapshot{
			Name:            record.Customer.Name,
			Email:           record.Customer.Email,
			Phone:           record.Customer.Phone,
			WhatsApp:        record.Customer.WhatsApp,
			SpecialRequests: record.Customer.SpecialRequests,
		},
	}

	switch details := record.Details.(type) {
	case domain.PackageDetails:
		s.Mode = domain.ModePackage
		s.Package = &packageSnapshot{
			PackageID:     details.PackageID,
			PackageName:   details.PackageName,
			Dates:         details.Dates,
			Accommodation: details.Accommodation,
			Activities:    details.Activities,
		}
	case domain.CustomDetails:
		s.Mode = domain.ModeCustom
		s.Custom = &customSnapshot{
			CheckIn:       details.CheckIn,
			CheckOut:      details.CheckOut,
			Nights:        details.Nights,
			Accommodation: details.Accommodation,
			Activities:    details.Activities,
			Services:      details.Services,
		}
	default:
		return nil, fmt.Errorf("%w: unsupported details type %T", ErrEncodeSnapshot, record.Details)
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}
	return raw, nil
}

func decodeSnapshot(raw []byte, record *domain.HistoryRecord) error {
	var s snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}

	switch {
	case s.Mode == domain.ModePackage && s.Package != nil:
		record.Details = domain.PackageDetails{
			PackageID:     s.Package.PackageID,
			PackageName:   s.Package.PackageName,
			Dates:         s.Package.Dates,
			Accommodation: s.Package.Accommodation,
			Activities:    s.Package.Activities,
		}
	case s.Mode == domain.ModeCustom && s.Custom != nil:
		record.Details = domain.CustomDetails{
			CheckIn:       s.Custom.CheckIn,
			CheckOut:      s.Custom.CheckOut,
			Nights:        s.Custom.Nights,
			Accommodation: s.Custom.Accommodation,
			Activities:    s.Custom.Activities,
			Services:      s.Custom.Services,
		}
	default:
		return fmt.Errorf("%w: mode %q without matching details", ErrDecodeSnapshot, s.Mode)
	}

	record.OrderNumber = s.OrderNumber
	record.Guests = s.Guests
	record.TotalPrice = s.TotalPrice
	record.Status = s.Status
	record.Customer = domain.CustomerDetails{
		Name:            s.Customer.Name,
		Email:           s.Customer.Email,
		Phone:           s.Customer.Phone,
		WhatsApp:        s.Customer.WhatsApp,
		SpecialRequests: s.Customer.SpecialRequests,
	}
	return nil
}
