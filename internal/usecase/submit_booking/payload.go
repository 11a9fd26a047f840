package submit_booking

import (
	"fmt"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
	"github.com/m04kA/DMar-BookingService/internal/service/pricing"
)

// buildRequest собирает тело запроса бэкенду. Тип бронирования определяется режимом выбора.
func buildRequest(sel domain.Selection, total pricing.Breakdown) (backend.BookingRequest, error) {
	customer := backend.CustomerFields{
		CustomerName:     sel.Customer.Name,
		CustomerEmail:    sel.Customer.Email,
		CustomerPhone:    sel.Customer.Phone,
		CustomerWhatsApp: sel.Customer.WhatsApp,
		SpecialRequests:  sel.Customer.SpecialRequests,
	}

	switch sel.Mode {
	case domain.ModePackage:
		if sel.Package == nil || sel.Package.Package == nil {
			return nil, fmt.Errorf("%w: package not chosen", ErrInternal)
		}
		pkg := sel.Package.Package
		return backend.PackageBookingRequest{
			PackageID:   pkg.ID,
			PackageName: pkg.Name,
			PackageDetails: backend.PackageDetailsPayload{
				Accommodation: packageAccommodationName(pkg),
				Activities:    nonNil(pkg.Activities),
			},
			Dates:          pkg.Dates,
			Guests:         sel.Guests,
			TotalPrice:     total.Total,
			CustomerFields: customer,
		}, nil

	case domain.ModeCustom:
		custom := sel.Custom
		if custom == nil || custom.Dates == nil || custom.Accommodation == nil {
			return nil, fmt.Errorf("%w: custom selection incomplete", ErrInternal)
		}

		activities := make([]int64, 0, len(custom.Activities))
		for _, a := range custom.Activities {
			activities = append(activities, a.ID)
		}
		services := make([]int64, 0, len(custom.Services))
		for _, s := range custom.Services {
			services = append(services, s.ID)
		}

		return backend.CustomBookingRequest{
			CheckInDate:       custom.Dates.Start.String(),
			CheckOutDate:      custom.Dates.End.String(),
			AccommodationID:   custom.Accommodation.ID,
			AccommodationType: string(custom.Accommodation.Category),
			Activities:        activities,
			Services:          services,
			Guests:            sel.Guests,
			TotalPrice:        total.Total,
			CustomerFields:    customer,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown booking mode %q", ErrInternal, sel.Mode)
	}
}

// buildDetails собирает описание бронирования для локальной истории
func buildDetails(sel domain.Selection, total pricing.Breakdown) domain.BookingDetails {
	if sel.Mode == domain.ModePackage {
		pkg := sel.Package.Package
		return domain.PackageDetails{
			PackageID:     pkg.ID,
			PackageName:   pkg.Name,
			Dates:         pkg.Dates,
			Accommodation: packageAccommodationName(pkg),
			Activities:    nonNil(pkg.Activities),
		}
	}

	custom := sel.Custom
	details := domain.CustomDetails{
		CheckIn:       custom.Dates.Start.String(),
		CheckOut:      custom.Dates.End.String(),
		Nights:        total.Nights,
		Accommodation: custom.Accommodation.Name,
		Activities:    make([]string, 0, len(custom.Activities)),
		Services:      make([]string, 0, len(custom.Services)),
	}
	for _, a := range custom.Activities {
		details.Activities = append(details.Activities, a.Name)
	}
	for _, s := range custom.Services {
		details.Services = append(details.Services, s.Name)
	}
	return details
}

func packageAccommodationName(pkg *domain.Package) string {
	if pkg.Accommodation == nil {
		return ""
	}
	return pkg.Accommodation.Name
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
