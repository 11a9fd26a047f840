package models

import (
	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// PackageResponse пакет для отображения
type PackageResponse struct {
	ID             int64                         `json:"id"`
	Name           string                        `json:"name"`
	Description    string                        `json:"description"`
	Dates          string                        `json:"dates"`
	StartDate      string                        `json:"startDate,omitempty"` // "2025-03-01"
	EndDate        string                        `json:"endDate,omitempty"`
	Duration       string                        `json:"duration"`
	Accommodation  *PackageAccommodationResponse `json:"accommodation,omitempty"`
	Activities     []string                      `json:"activities"`
	Price          float64                       `json:"price"` // за человека
	SpotsAvailable int                           `json:"spotsAvailable"`
	Available      bool                          `json:"available"`
	WomenOnly      bool                          `json:"womenOnly"`
	ImageURL       string                        `json:"imageUrl,omitempty"`
}

// PackageAccommodationResponse проживание в составе пакета
type PackageAccommodationResponse struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Features []string `json:"features"`
}

// AccommodationResponse отель или курорт
type AccommodationResponse struct {
	ID            int64    `json:"id"`
	Category      string   `json:"category"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Features      []string `json:"features"`
	PricePerNight float64  `json:"pricePerNight"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}

// ActivityResponse активность
type ActivityResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Icon        string  `json:"icon"`
	Price       float64 `json:"price"` // за гостя
}

// ServiceResponse дополнительная услуга
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	RateKind    string  `json:"rateKind"` // flat | per_day
	Amount      float64 `json:"amount"`
}

// CatalogResponse каталог для одного сценария бронирования
type CatalogResponse struct {
	Packages   []PackageResponse       `json:"packages"`
	Hotels     []AccommodationResponse `json:"hotels"`
	Resorts    []AccommodationResponse `json:"resorts"`
	Activities []ActivityResponse      `json:"activities"`
	Services   []ServiceResponse       `json:"services"`
}

// FromDomainPackage конвертирует domain модель в DTO
func FromDomainPackage(p *domain.Package) *PackageResponse {
	if p == nil {
		return nil
	}

	resp := &PackageResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Dates:          p.Dates,
		Duration:       p.Duration,
		Activities:     nonNilStrings(p.Activities),
		Price:          p.Price,
		SpotsAvailable: p.SpotsAvailable,
		Available:      p.Available(),
		WomenOnly:      p.WomenOnly,
		ImageURL:       p.ImageURL,
	}
	if !p.StartDate.IsZero() {
		resp.StartDate = p.StartDate.String()
	}
	if !p.EndDate.IsZero() {
		resp.EndDate = p.EndDate.String()
	}
	if p.Accommodation != nil {
		resp.Accommodation = &PackageAccommodationResponse{
			Name:     p.Accommodation.Name,
			Type:     p.Accommodation.Type,
			Features: nonNilStrings(p.Accommodation.Features),
		}
	}
	return resp
}

// FromDomainAccommodation конвертирует domain модель в DTO
func FromDomainAccommodation(a *domain.Accommodation) *AccommodationResponse {
	if a == nil {
		return nil
	}
	return &AccommodationResponse{
		ID:            a.ID,
		Category:      string(a.Category),
		Name:          a.Name,
		Type:          a.Type,
		Description:   a.Description,
		Location:      a.Location,
		Features:      nonNilStrings(a.Features),
		PricePerNight: a.PricePerNight,
		ImageURL:      a.ImageURL,
	}
}

// FromDomainActivity конвертирует domain модель в DTO
func FromDomainActivity(a domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Duration:    a.Duration,
		Icon:        a.Icon,
		Price:       a.Price,
	}
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		RateKind:    string(s.Rate.Kind),
		Amount:      s.Rate.Amount,
	}
}

// FromDomainCatalog конвертирует каталог в DTO
func FromDomainCatalog(c *domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Packages:   []PackageResponse{},
		Hotels:     []AccommodationResponse{},
		Resorts:    []AccommodationResponse{},
		Activities: []ActivityResponse{},
		Services:   []ServiceResponse{},
	}
	if c == nil {
		return resp
	}

	for i := range c.Packages {
		resp.Packages = append(resp.Packages, *FromDomainPackage(&c.Packages[i]))
	}
	for i := range c.Accommodations {
		acc := FromDomainAccommodation(&c.Accommodations[i])
		switch c.Accommodations[i].Category {
		case domain.CategoryHotel:
			resp.Hotels = append(resp.Hotels, *acc)
		case domain.CategoryResort:
			resp.Resorts = append(resp.Resorts, *acc)
		}
	}
	for _, a := range c.Activities {
		resp.Activities = append(resp.Activities, FromDomainActivity(a))
	}
	for _, s := range c.Services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
