package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// PackageFilter фильтры списка пакетов (nil = без фильтра)
type PackageFilter struct {
	Available *bool
	WomenOnly *bool
	StartDate string
}

// AccommodationFilter фильтры списка отелей и курортов
type AccommodationFilter struct {
	MaxPrice float64
	Locale   string
}

func (f PackageFilter) query() url.Values {
	q := url.Values{}
	if f.Available != nil {
		q.Set("available", strconv.FormatBool(*f.Available))
	}
	if f.WomenOnly != nil {
		q.Set("is_women_only", strconv.FormatBool(*f.WomenOnly))
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	return q
}

func (f AccommodationFilter) query() url.Values {
	q := url.Values{}
	if f.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Locale != "" {
		q.Set("locale", f.Locale)
	}
	return q
}

// GetPackages получает список пакетов
func (c *Client) GetPackages(ctx context.Context, filter PackageFilter) ([]domain.Package, error) {
	body, err := c.get(ctx, "packages", "/packages", filter.query())
	if err != nil {
		return nil, err
	}

	var dtos []packageDTO
	if err := decodeList(body, &dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode packages: %v", ErrInvalidResponse, err)
	}

	packages := make([]domain.Package, 0, len(dtos))
	for _, dto := range dtos {
		packages = append(packages, dto.toDomain())
	}
	return packages, nil
}

// GetHotels получает список отелей
func (c *Client) GetHotels(ctx context.Context, filter AccommodationFilter) ([]domain.Accommodation, error) {
	return c.getAccommodations(ctx, "hotels", domain.CategoryHotel, filter)
}

// GetResorts получает список курортов
func (c *Client) GetResorts(ctx context.Context, filter AccommodationFilter) ([]domain.Accommodation, error) {
	return c.getAccommodations(ctx, "resorts", domain.CategoryResort, filter)
}

// getAccommodations категорию задает эндпоинт, а не поле ответа
func (c *Client) getAccommodations(ctx context.Context, endpoint string, category domain.AccommodationCategory, filter AccommodationFilter) ([]domain.Accommodation, error) {
	body, err := c.get(ctx, endpoint, "/"+endpoint, filter.query())
	if err != nil {
		return nil, err
	}

	var dtos []accommodationDTO
	if err := decodeList(body, &dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidResponse, endpoint, err)
	}

	result := make([]domain.Accommodation, 0, len(dtos))
	for _, dto := range dtos {
		result = append(result, dto.toDomain(category))
	}
	return result, nil
}

// GetActivities получает список активностей
func (c *Client) GetActivities(ctx context.Context) ([]domain.Activity, error) {
	body, err := c.get(ctx, "activities", "/activities", nil)
	if err != nil {
		return nil, err
	}

	var dtos []activityDTO
	if err := decodeList(body, &dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode activities: %v", ErrInvalidResponse, err)
	}

	activities := make([]domain.Activity, 0, len(dtos))
	for _, dto := range dtos {
		activities = append(activities, dto.toDomain())
	}
	return activities, nil
}

// GetServices получает список дополнительных услуг
func (c *Client) GetServices(ctx context.Context) ([]domain.Service, error) {
	body, err := c.get(ctx, "services", "/services", nil)
	if err != nil {
		return nil, err
	}

	var dtos []serviceDTO
	if err := decodeList(body, &dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode services: %v", ErrInvalidResponse, err)
	}

	services := make([]domain.Service, 0, len(dtos))
	for _, dto := range dtos {
		services = append(services, dto.toDomain())
	}
	return services, nil
}

// GetServiceContent получает контент информационной страницы услуги
func (c *Client) GetServiceContent(ctx context.Context, slug string) (*ServiceContent, error) {
	body, err := c.get(ctx, "service_content", "/services/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: service content for %q is not JSON", ErrInvalidResponse, slug)
	}
	return &ServiceContent{Slug: slug, Payload: json.RawMessage(body)}, nil
}

// GetTranslations получает таблицу переводов.
// Бэкенд отдает {"translations": {...}}, старые версии отдают плоский объект.
func (c *Client) GetTranslations(ctx context.Context, locale string) (map[string]string, error) {
	body, err := c.get(ctx, "translations", "/translations/"+url.PathEscape(locale), nil)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Translations map[string]string `json:"translations"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Translations != nil {
		return wrapped.Translations, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("%w: failed to decode translations: %v", ErrInvalidResponse, err)
	}
	if flat == nil {
		flat = map[string]string{}
	}
	return flat, nil
}
