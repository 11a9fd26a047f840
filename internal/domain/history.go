package domain

import "time"

// BookingDetails describes what was booked. Implemented by PackageDetails and CustomDetails.
type BookingDetails interface {
	Mode() BookingMode
}

// PackageDetails details of a package booking
type PackageDetails struct {
	PackageID     int64
	PackageName   string
	Dates         string
	Accommodation string
	Activities    []string
}

func (PackageDetails) Mode() BookingMode { return ModePackage }

// CustomDetails details of a custom booking
type CustomDetails struct {
	CheckIn       string
	CheckOut      string
	Nights        int
	Accommodation string
	Activities    []string
	Services      []string
}

func (CustomDetails) Mode() BookingMode { return ModeCustom }

// HistoryRecord a snapshot of a past successful submission kept on this side only.
// It is never synced back to the backend and is not authoritative.
type HistoryRecord struct {
	Reference   string // backend order number or a locally generated reference
	OrderNumber string // empty when the backend did not return one
	Details     BookingDetails
	Guests      int
	TotalPrice  float64
	Customer    CustomerDetails
	Status      string
	CreatedAt   time.Time
}
