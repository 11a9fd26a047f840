package domain

import (
	"errors"

	"github.com/m04kA/DMar-BookingService/pkg/types"
)

var (
	// ErrDateRangeIncomplete start or end date is missing
	ErrDateRangeIncomplete = errors.New("date range: start and end are required")

	// ErrDateRangeOrder start is not strictly before end
	ErrDateRangeOrder = errors.New("date range: start must be before end")

	// ErrDateRangeInPast start lies before today
	ErrDateRangeInPast = errors.New("date range: start is in the past")
)

// DateRange is an ordered pair of calendar dates (check-in, check-out)
type DateRange struct {
	Start types.Date
	End   types.Date
}

// Nights returns the number of whole days between start and end
func (r DateRange) Nights() int {
	return r.Start.DaysUntil(r.End)
}

// Validate checks that the range is complete, ordered and does not start before today
func (r DateRange) Validate(today types.Date) error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrDateRangeIncomplete
	}
	if !r.Start.Before(r.End) {
		return ErrDateRangeOrder
	}
	if r.Start.Before(today) {
		return ErrDateRangeInPast
	}
	return nil
}
