package backend

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/pkg/types"
)

// packageDTO пакет в формате бэкенда
type packageDTO struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Dates          string            `json:"dates"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	Duration       string            `json:"duration"`
	Activities     stringList        `json:"activities"`
	Price          decimal           `json:"price"`
	SpotsAvailable int               `json:"spots_available"`
	IsWomenOnly    bool              `json:"is_women_only"`
	ImageURL       string            `json:"image_url"`
	Accommodation  *accommodationDTO `json:"accommodation"`
}

// accommodationDTO отель или курорт в формате бэкенда
type accommodationDTO struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Features      stringList `json:"features"`
	PricePerNight decimal    `json:"price_per_night"`
	Location      string     `json:"location"`
	ImageURL      string     `json:"image_url"`
}

// activityDTO активность в формате бэкенда
type activityDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       decimal `json:"price"`
	Icon        string  `json:"icon"`
}

// serviceDTO услуга в формате бэкенда: price и price_per_day опциональны
type serviceDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       decimal `json:"price"`
	PricePerDay decimal `json:"price_per_day"`
	Icon        string  `json:"icon"`
}

// orderDTO заказ в формате бэкенда
type orderDTO struct {
	ID               int64          `json:"id"`
	OrderNumber      flexString     `json:"order_number"`
	CustomerName     string         `json:"customer_name"`
	CustomerEmail    string         `json:"customer_email"`
	CustomerPhone    string         `json:"customer_phone"`
	CustomerWhatsApp string         `json:"customer_whatsapp"`
	SpecialRequests  string         `json:"special_requests"`
	TotalAmount      decimal        `json:"total_amount"`
	PaymentStatus    string         `json:"payment_status"`
	PaymentMethod    string         `json:"payment_method"`
	Status           string         `json:"status"`
	Items            []orderItemDTO `json:"items"`
	CreatedAt        string         `json:"created_at"`
}

// orderItemDTO позиция заказа
type orderItemDTO struct {
	ItemType   string  `json:"item_type"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	GuestCount int     `json:"guest_count"`
	UnitPrice  decimal `json:"unit_price"`
	Subtotal   decimal `json:"subtotal"`
}

// bookingResponseDTO ответ на создание бронирования. Номер заказа встречается
// в разных полях в зависимости от версии бэкенда.
type bookingResponseDTO struct {
	Message string `json:"message"`
	Order   *struct {
		OrderNumber flexString `json:"order_number"`
	} `json:"order"`
	OrderNumber        flexString `json:"order_number"`
	BookingNumber      flexString `json:"booking_number"`
	BookingNumberCamel flexString `json:"bookingNumber"`
}

// errorResponseDTO структурированная ошибка бэкенда
type errorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServiceContent контент информационной страницы услуги (diving, fishing, excursions)
type ServiceContent struct {
	Slug    string          `json:"slug"`
	Payload json.RawMessage `json:"payload"`
}

// BookingResult результат успешного создания бронирования
type BookingResult struct {
	OrderNumber string // пустой, если бэкенд не вернул номер
	Message     string
	Raw         json.RawMessage
}

func (r bookingResponseDTO) orderNumber() string {
	if r.Order != nil && r.Order.OrderNumber != "" {
		return string(r.Order.OrderNumber)
	}
	for _, candidate := range []flexString{r.OrderNumber, r.BookingNumber, r.BookingNumberCamel} {
		if candidate != "" {
			return string(candidate)
		}
	}
	return ""
}

func (e errorResponseDTO) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

func (p packageDTO) toDomain() domain.Package {
	pkg := domain.Package{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Dates:          p.Dates,
		StartDate:      parseLooseDate(p.StartDate),
		EndDate:        parseLooseDate(p.EndDate),
		Duration:       p.Duration,
		Activities:     []string(p.Activities),
		Price:          p.Price.Value,
		SpotsAvailable: p.SpotsAvailable,
		WomenOnly:      p.IsWomenOnly,
		ImageURL:       p.ImageURL,
	}
	if pkg.Activities == nil {
		pkg.Activities = []string{}
	}
	if p.Accommodation != nil {
		pkg.Accommodation = &domain.PackageAccommodation{
			Name:     p.Accommodation.Name,
			Type:     p.Accommodation.Type,
			Features: nonNil(p.Accommodation.Features),
		}
	}
	return pkg
}

func (a accommodationDTO) toDomain(category domain.AccommodationCategory) domain.Accommodation {
	return domain.Accommodation{
		ID:            a.ID,
		Category:      category,
		Name:          a.Name,
		Type:          a.Type,
		Description:   a.Description,
		Location:      a.Location,
		Features:      nonNil(a.Features),
		PricePerNight: a.PricePerNight.Value,
		ImageURL:      a.ImageURL,
	}
}

func (a activityDTO) toDomain() domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Duration:    a.Duration,
		Icon:        a.Icon,
		Price:       a.Price.Value,
	}
}

// toDomain переводит услугу в домен: price_per_day имеет приоритет над price
func (s serviceDTO) toDomain() domain.Service {
	rate := domain.FlatRate(s.Price.Value)
	if s.PricePerDay.Set && s.PricePerDay.Value > 0 {
		rate = domain.PerDayRate(s.PricePerDay.Value)
	}
	return domain.Service{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		Rate:        rate,
	}
}

func (o orderDTO) toDomain() domain.Order {
	order := domain.Order{
		ID:               o.ID,
		OrderNumber:      string(o.OrderNumber),
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		CustomerPhone:    o.CustomerPhone,
		CustomerWhatsApp: o.CustomerWhatsApp,
		SpecialRequests:  o.SpecialRequests,
		TotalAmount:      o.TotalAmount.Value,
		PaymentStatus:    o.PaymentStatus,
		PaymentMethod:    o.PaymentMethod,
		Status:           o.Status,
		Items:            make([]domain.OrderItem, 0, len(o.Items)),
	}
	if t, err := time.Parse(time.RFC3339Nano, o.CreatedAt); err == nil {
		order.CreatedAt = t
	}
	for _, item := range o.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ItemType:   item.ItemType,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			GuestCount: item.GuestCount,
			UnitPrice:  item.UnitPrice.Value,
			Subtotal:   item.Subtotal.Value,
		})
	}
	return order
}

// parseLooseDate разбирает "2025-03-01" и "2025-03-01T00:00:00.000000Z"; иначе нулевая дата
func parseLooseDate(s string) types.Date {
	s = strings.TrimSpace(s)
	if len(s) > len(types.DateLayout) {
		s = s[:len(types.DateLayout)]
	}
	d, err := types.ParseDate(s)
	if err != nil {
		return types.Date{}
	}
	return d
}

func nonNil(l stringList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
