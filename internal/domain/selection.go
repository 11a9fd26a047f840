package domain

import (
	"errors"
	"strings"
)

// BookingMode discriminates a pre-set package booking from a custom itinerary
type BookingMode string

const (
	ModePackage BookingMode = "package"
	ModeCustom  BookingMode = "custom"
)

// IsValid reports whether m is a known booking mode
func (m BookingMode) IsValid() bool {
	return m == ModePackage || m == ModeCustom
}

var (
	// ErrCustomerNameRequired customer name is empty
	ErrCustomerNameRequired = errors.New("customer: name is required")

	// ErrCustomerEmailRequired customer email is empty or malformed
	ErrCustomerEmailRequired = errors.New("customer: valid email is required")

	// ErrCustomerPhoneRequired customer phone is empty
	ErrCustomerPhoneRequired = errors.New("customer: phone is required")
)

// CustomerDetails contact data entered on the details step
type CustomerDetails struct {
	Name            string
	Email           string
	Phone           string
	WhatsApp        string // optional
	SpecialRequests string // optional
}

// Validate checks the required fields (name, email, phone)
func (c CustomerDetails) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCustomerNameRequired
	}
	email := strings.TrimSpace(c.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrCustomerEmailRequired
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrCustomerPhoneRequired
	}
	return nil
}

// PackageSelection the package chosen in package mode
type PackageSelection struct {
	Package *Package
}

// CustomSelection the pieces of a custom itinerary chosen so far
type CustomSelection struct {
	Dates         *DateRange
	Accommodation *Accommodation
	Activities    []Activity // set keyed by Activity.ID, insertion ordered
	Services      []Service  // set keyed by Service.ID, insertion ordered
}

// HasActivity reports whether the activity id is selected
func (c *CustomSelection) HasActivity(id int64) bool {
	for _, a := range c.Activities {
		if a.ID == id {
			return true
		}
	}
	return false
}

// ToggleActivity selects the activity, or deselects it when already selected.
// Returns true if the activity is selected after the call.
func (c *CustomSelection) ToggleActivity(activity Activity) bool {
	for i, a := range c.Activities {
		if a.ID == activity.ID {
			c.Activities = append(c.Activities[:i:i], c.Activities[i+1:]...)
			return false
		}
	}
	c.Activities = append(c.Activities, activity)
	return true
}

// HasService reports whether the service id is selected
func (c *CustomSelection) HasService(id int64) bool {
	for _, s := range c.Services {
		if s.ID == id {
			return true
		}
	}
	return false
}

// ToggleService selects the service, or deselects it when already selected.
// Returns true if the service is selected after the call.
func (c *CustomSelection) ToggleService(service Service) bool {
	for i, s := range c.Services {
		if s.ID == service.ID {
			c.Services = append(c.Services[:i:i], c.Services[i+1:]...)
			return false
		}
	}
	c.Services = append(c.Services, service)
	return true
}

// Clone returns a deep copy of the custom selection
func (c *CustomSelection) Clone() *CustomSelection {
	if c == nil {
		return nil
	}
	out := &CustomSelection{
		Activities: append([]Activity(nil), c.Activities...),
		Services:   append([]Service(nil), c.Services...),
	}
	if c.Dates != nil {
		dates := *c.Dates
		out.Dates = &dates
	}
	if c.Accommodation != nil {
		acc := *c.Accommodation
		out.Accommodation = &acc
	}
	return out
}

// Selection is the accumulated state of one in-progress booking.
// Exactly one of Package and Custom is populated, matching Mode.
// The total price is never stored here; it is derived on demand.
type Selection struct {
	Mode     BookingMode
	Package  *PackageSelection
	Custom   *CustomSelection
	Guests   int
	Customer CustomerDetails
}

// Clone returns a deep copy usable outside the owning session
func (s Selection) Clone() Selection {
	out := s
	if s.Package != nil {
		pkg := *s.Package
		out.Package = &pkg
	}
	out.Custom = s.Custom.Clone()
	return out
}
