package pricing

import (
	"fmt"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// CustomInput входные данные расчета custom бронирования
type CustomInput struct {
	Dates         domain.DateRange
	Accommodation *domain.Accommodation
	Activities    []domain.Activity
	Services      []domain.Service
	Guests        int
}

// Breakdown разбивка итоговой стоимости
type Breakdown struct {
	Nights        int
	Accommodation float64
	Activities    float64
	Services      float64
	Total         float64
}

// Nights возвращает количество ночей в диапазоне (не меньше 1)
func Nights(dates domain.DateRange) (int, error) {
	if dates.Start.IsZero() || dates.End.IsZero() {
		return 0, fmt.Errorf("%w: incomplete range", ErrInvalidRange)
	}
	nights := dates.Nights()
	if nights < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRange, nights)
	}
	return nights, nil
}

// CustomTotal считает стоимость custom бронирования:
//
//	accommodation = pricePerNight * nights * guests
//	activities    = sum(activity.price * guests)
//	services      = sum(perDay ? rate * nights * guests : flat)
func CustomTotal(in CustomInput) (Breakdown, error) {
	if err := validateGuests(in.Guests); err != nil {
		return Breakdown{}, err
	}
	if in.Accommodation == nil {
		return Breakdown{}, ErrMissingAccommodation
	}

	nights, err := Nights(in.Dates)
	if err != nil {
		return Breakdown{}, err
	}

	guests := float64(in.Guests)
	b := Breakdown{Nights: nights}

	b.Accommodation = in.Accommodation.PricePerNight * float64(nights) * guests

	for _, activity := range in.Activities {
		b.Activities += activity.Price * guests
	}

	for _, service := range in.Services {
		if service.HasPerDayRate() {
			b.Services += service.Rate.Amount * float64(nights) * guests
			continue
		}
		b.Services += service.Rate.Amount
	}

	b.Total = b.Accommodation + b.Activities + b.Services
	return b, nil
}

// PackageTotal считает стоимость пакета: цена за человека * количество гостей
func PackageTotal(pkg *domain.Package, guests int) (float64, error) {
	if pkg == nil {
		return 0, ErrMissingPackage
	}
	if err := validateGuests(guests); err != nil {
		return 0, err
	}
	return pkg.Price * float64(guests), nil
}

// Total считает стоимость выбора в любом режиме
func Total(selection domain.Selection) (Breakdown, error) {
	switch selection.Mode {
	case domain.ModePackage:
		if selection.Package == nil {
			return Breakdown{}, ErrMissingPackage
		}
		total, err := PackageTotal(selection.Package.Package, selection.Guests)
		if err != nil {
			return Breakdown{}, err
		}
		return Breakdown{Total: total}, nil

	case domain.ModeCustom:
		custom := selection.Custom
		if custom == nil || custom.Accommodation == nil {
			return Breakdown{}, ErrMissingAccommodation
		}
		if custom.Dates == nil {
			return Breakdown{}, fmt.Errorf("%w: dates not chosen", ErrInvalidRange)
		}
		return CustomTotal(CustomInput{
			Dates:         *custom.Dates,
			Accommodation: custom.Accommodation,
			Activities:    custom.Activities,
			Services:      custom.Services,
			Guests:        selection.Guests,
		})

	default:
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownMode, selection.Mode)
	}
}

func validateGuests(guests int) error {
	if guests < domain.MinGuests {
		return fmt.Errorf("%w: got %d", ErrInvalidGuests, guests)
	}
	return nil
}
