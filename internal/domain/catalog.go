package domain

import "github.com/m04kA/DMar-BookingService/pkg/types"

// AccommodationCategory kind of accommodation; hotels and resorts are mutually exclusive
type AccommodationCategory string

const (
	CategoryHotel  AccommodationCategory = "hotel"
	CategoryResort AccommodationCategory = "resort"
)

// IsValid reports whether c is a known category
func (c AccommodationCategory) IsValid() bool {
	return c == CategoryHotel || c == CategoryResort
}

// PackageAccommodation accommodation bundled into a package (display only)
type PackageAccommodation struct {
	Name     string
	Type     string
	Features []string
}

// Package is a fixed, pre-priced bundle sold per person
type Package struct {
	ID             int64
	Name           string
	Description    string
	Dates          string // display string, never used arithmetically
	StartDate      types.Date
	EndDate        types.Date
	Duration       string
	Accommodation  *PackageAccommodation
	Activities     []string
	Price          float64 // per person
	SpotsAvailable int
	WomenOnly      bool
	ImageURL       string
}

// Available returns true if the package still has free spots
func (p *Package) Available() bool {
	return p.SpotsAvailable > 0
}

// AccommodationKey identifies an accommodation; hotel and resort ids may overlap
type AccommodationKey struct {
	Category AccommodationCategory
	ID       int64
}

// Accommodation is a hotel or resort priced per night
type Accommodation struct {
	ID            int64
	Category      AccommodationCategory
	Name          string
	Type          string
	Description   string
	Location      string
	Features      []string
	PricePerNight float64
	ImageURL      string
}

// Key returns the accommodation identity
func (a *Accommodation) Key() AccommodationKey {
	return AccommodationKey{Category: a.Category, ID: a.ID}
}

// Activity is an add-on priced per guest
type Activity struct {
	ID          int64
	Name        string
	Description string
	Duration    string
	Icon        string
	Price       float64
}

// ServiceRateKind how a service is charged
type ServiceRateKind string

const (
	RateFlat   ServiceRateKind = "flat"
	RatePerDay ServiceRateKind = "per_day"
)

// ServiceRate is either a flat price or a per-day rate, never both
type ServiceRate struct {
	Kind   ServiceRateKind
	Amount float64
}

// FlatRate builds a flat service rate
func FlatRate(amount float64) ServiceRate {
	return ServiceRate{Kind: RateFlat, Amount: amount}
}

// PerDayRate builds a per-day service rate
func PerDayRate(amount float64) ServiceRate {
	return ServiceRate{Kind: RatePerDay, Amount: amount}
}

// Service is an optional extra (transfers, equipment, guides)
type Service struct {
	ID          int64
	Name        string
	Description string
	Icon        string
	Rate        ServiceRate
}

// HasPerDayRate returns true if the service is charged per night per guest
func (s *Service) HasPerDayRate() bool {
	return s.Rate.Kind == RatePerDay
}

// Catalog is everything a visitor can select in one booking flow
type Catalog struct {
	Packages       []Package
	Accommodations []Accommodation
	Activities     []Activity
	Services       []Service
}

// FindPackage returns the package with the given id
func (c *Catalog) FindPackage(id int64) (*Package, bool) {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i], true
		}
	}
	return nil, false
}

// FindAccommodation returns the accommodation with the given key
func (c *Catalog) FindAccommodation(key AccommodationKey) (*Accommodation, bool) {
	for i := range c.Accommodations {
		if c.Accommodations[i].Key() == key {
			return &c.Accommodations[i], true
		}
	}
	return nil, false
}

// FindActivity returns the activity with the given id
func (c *Catalog) FindActivity(id int64) (*Activity, bool) {
	for i := range c.Activities {
		if c.Activities[i].ID == id {
			return &c.Activities[i], true
		}
	}
	return nil, false
}

// FindService returns the service with the given id
func (c *Catalog) FindService(id int64) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// Hotels returns accommodations of the hotel category
func (c *Catalog) Hotels() []Accommodation {
	return c.byCategory(CategoryHotel)
}

// Resorts returns accommodations of the resort category
func (c *Catalog) Resorts() []Accommodation {
	return c.byCategory(CategoryResort)
}

func (c *Catalog) byCategory(category AccommodationCategory) []Accommodation {
	result := make([]Accommodation, 0, len(c.Accommodations))
	for _, a := range c.Accommodations {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}
