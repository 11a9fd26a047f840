package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/pkg/types"
)

func rangeOf(nights int) domain.DateRange {
	start := types.NewDate(2026, time.November, 10)
	return domain.DateRange{Start: start, End: start.AddDays(nights)}
}

var villa = &domain.Accommodation{ID: 3, Category: domain.CategoryResort, Name: "Beach Villa", PricePerNight: 100}

func TestCustomTotal_ScenarioFromBookingPage(t *testing.T) {
	b, err := CustomTotal(CustomInput{
		Dates:         rangeOf(4),
		Accommodation: villa,
		Activities:    []domain.Activity{{ID: 1, Price: 50}},
		Services:      []domain.Service{{ID: 1, Rate: domain.PerDayRate(20)}},
		Guests:        2,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, b.Nights)
	assert.Equal(t, 800.0, b.Accommodation)
	assert.Equal(t, 100.0, b.Activities)
	assert.Equal(t, 160.0, b.Services)
	assert.Equal(t, 1060.0, b.Total)
}

func TestCustomTotal_AccommodationOnly(t *testing.T) {
	for _, nights := range []int{1, 3, 7} {
		for _, guests := range []int{1, 2, 5} {
			b, err := CustomTotal(CustomInput{Dates: rangeOf(nights), Accommodation: villa, Guests: guests})
			require.NoError(t, err)
			assert.Equal(t, villa.PricePerNight*float64(nights)*float64(guests), b.Total)
			assert.Zero(t, b.Activities)
			assert.Zero(t, b.Services)
		}
	}
}

func TestCustomTotal_LinearInGuestsWithFlatServices(t *testing.T) {
	in := CustomInput{
		Dates:         rangeOf(5),
		Accommodation: villa,
		Activities:    []domain.Activity{{ID: 1, Price: 50}, {ID: 2, Price: 35}},
		Guests:        1,
	}
	one, err := CustomTotal(in)
	require.NoError(t, err)

	for _, g := range []int{1, 2, 5} {
		in.Guests = g
		b, err := CustomTotal(in)
		require.NoError(t, err)
		assert.Equal(t, float64(g)*one.Total, b.Total, "guests=%d", g)
	}
}

func TestCustomTotal_FlatServiceIsNotMultiplied(t *testing.T) {
	b, err := CustomTotal(CustomInput{
		Dates:         rangeOf(3),
		Accommodation: villa,
		Services:      []domain.Service{{ID: 4, Rate: domain.FlatRate(40)}},
		Guests:        4,
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, b.Services)
}

func TestCustomTotal_Errors(t *testing.T) {
	_, err := CustomTotal(CustomInput{Dates: rangeOf(2), Accommodation: villa, Guests: 0})
	assert.ErrorIs(t, err, ErrInvalidGuests)

	_, err = CustomTotal(CustomInput{Dates: rangeOf(2), Guests: 2})
	assert.ErrorIs(t, err, ErrMissingAccommodation)

	_, err = CustomTotal(CustomInput{Dates: rangeOf(0), Accommodation: villa, Guests: 2})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = CustomTotal(CustomInput{Dates: rangeOf(-2), Accommodation: villa, Guests: 2})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPackageTotal(t *testing.T) {
	pkg := &domain.Package{ID: 1, Name: "Island Escape", Price: 500, SpotsAvailable: 6}

	total, err := PackageTotal(pkg, 3)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, total)

	_, err = PackageTotal(pkg, -1)
	assert.ErrorIs(t, err, ErrInvalidGuests)

	_, err = PackageTotal(nil, 2)
	assert.ErrorIs(t, err, ErrMissingPackage)
}

func TestTotal_DispatchesOnMode(t *testing.T) {
	dates := rangeOf(2)

	custom, err := Total(domain.Selection{
		Mode:   domain.ModeCustom,
		Custom: &domain.CustomSelection{Dates: &dates, Accommodation: villa},
		Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, custom.Total)

	pkg, err := Total(domain.Selection{
		Mode:    domain.ModePackage,
		Package: &domain.PackageSelection{Package: &domain.Package{Price: 250}},
		Guests:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, pkg.Total)
	assert.Zero(t, pkg.Nights)

	_, err = Total(domain.Selection{Mode: domain.ModeCustom, Custom: &domain.CustomSelection{Dates: &dates}, Guests: 2})
	assert.ErrorIs(t, err, ErrMissingAccommodation)

	_, err = Total(domain.Selection{Guests: 2})
	assert.ErrorIs(t, err, ErrUnknownMode)
}
