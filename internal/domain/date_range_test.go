package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DMar-BookingService/pkg/types"
)

func TestDateRange_Validate(t *testing.T) {
	today := types.NewDate(2026, time.October, 18)

	tests := []struct {
		name  string
		r     DateRange
		want  error
		night int
	}{
		{
			name:  "valid range starting today",
			r:     DateRange{Start: today, End: today.AddDays(4)},
			night: 4,
		},
		{
			name: "missing end",
			r:    DateRange{Start: today},
			want: ErrDateRangeIncomplete,
		},
		{
			name: "missing start",
			r:    DateRange{End: today},
			want: ErrDateRangeIncomplete,
		},
		{
			name: "same day",
			r:    DateRange{Start: today.AddDays(1), End: today.AddDays(1)},
			want: ErrDateRangeOrder,
		},
		{
			name: "reversed",
			r:    DateRange{Start: today.AddDays(3), End: today.AddDays(1)},
			want: ErrDateRangeOrder,
		},
		{
			name: "starts yesterday",
			r:    DateRange{Start: today.AddDays(-1), End: today.AddDays(2)},
			want: ErrDateRangeInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate(today)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.night, tt.r.Nights())
		})
	}
}
