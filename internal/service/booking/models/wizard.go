package models

import (
	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/service/pricing"
	"github.com/m04kA/DMar-BookingService/internal/service/wizard"
)

// Request модели

// SelectModeRequest выбор типа бронирования
type SelectModeRequest struct {
	Mode string `json:"mode"` // package | custom
}

// ChoosePackageRequest выбор пакета
type ChoosePackageRequest struct {
	PackageID int64 `json:"packageId"`
}

// SetDatesRequest даты custom бронирования
type SetDatesRequest struct {
	CheckIn  string `json:"checkIn"`            // "2025-03-01"
	CheckOut string `json:"checkOut,omitempty"` // может отсутствовать, пока выбрана только дата заезда
}

// ChooseAccommodationRequest выбор проживания
type ChooseAccommodationRequest struct {
	Category string `json:"category"` // hotel | resort
	ID       int64  `json:"id"`
}

// SetGuestsRequest количество гостей
type SetGuestsRequest struct {
	Guests int `json:"guests"`
}

// CustomerRequest контактные данные
type CustomerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	WhatsApp        string `json:"whatsapp,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r CustomerRequest) ToDomain() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		WhatsApp:        r.WhatsApp,
		SpecialRequests: r.SpecialRequests,
	}
}

// Response модели

// WizardView состояние мастера бронирования для отображения
type WizardView struct {
	State       string               `json:"state"`
	Mode        string               `json:"mode,omitempty"`
	Step        string               `json:"step,omitempty"` // только для custom
	StepNumber  int                  `json:"stepNumber,omitempty"`
	TotalSteps  int                  `json:"totalSteps,omitempty"`
	Guests      int                  `json:"guests"`
	Package     *PackageResponse     `json:"package,omitempty"`
	Custom      *CustomSelectionView `json:"custom,omitempty"`
	Customer    CustomerRequest      `json:"customer"`
	Total       *TotalView           `json:"total,omitempty"` // nil, пока стоимость не вычислима
	CanContinue bool                 `json:"canContinue"`
	OrderNumber string               `json:"orderNumber,omitempty"`
	Failure     *FailureView         `json:"failure,omitempty"`
}

// CustomSelectionView выбор custom бронирования
type CustomSelectionView struct {
	CheckIn       string                 `json:"checkIn,omitempty"`
	CheckOut      string                 `json:"checkOut,omitempty"`
	Nights        int                    `json:"nights,omitempty"`
	Accommodation *AccommodationResponse `json:"accommodation,omitempty"`
	Activities    []ActivityResponse     `json:"activities"`
	Services      []ServiceResponse      `json:"services"`
}

// TotalView разбивка стоимости
type TotalView struct {
	Nights        int     `json:"nights,omitempty"`
	Accommodation float64 `json:"accommodation,omitempty"`
	Activities    float64 `json:"activities,omitempty"`
	Services      float64 `json:"services,omitempty"`
	Total         float64 `json:"total"`
}

// FailureView ошибка последней отправки
type FailureView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// FromWizard строит представление мастера
func FromWizard(w *wizard.Wizard) *WizardView {
	sel := w.Snapshot()

	view := &WizardView{
		State:       string(w.State()),
		Mode:        string(sel.Mode),
		Guests:      sel.Guests,
		CanContinue: w.CanContinue(),
		OrderNumber: w.OrderNumber(),
		Customer: CustomerRequest{
			Name:            sel.Customer.Name,
			Email:           sel.Customer.Email,
			Phone:           sel.Customer.Phone,
			WhatsApp:        sel.Customer.WhatsApp,
			SpecialRequests: sel.Customer.SpecialRequests,
		},
	}

	switch sel.Mode {
	case domain.ModePackage:
		if sel.Package != nil {
			view.Package = FromDomainPackage(sel.Package.Package)
		}
	case domain.ModeCustom:
		view.Step = w.Step().String()
		view.StepNumber = int(w.Step())
		view.TotalSteps = int(wizard.StepServices)
		view.Custom = fromCustomSelection(sel.Custom)
	}

	if b, ok := w.Total(); ok {
		view.Total = fromBreakdown(b)
	}

	if f := w.Failure(); f != nil {
		view.Failure = &FailureView{
			Kind:    string(f.Kind),
			Message: f.Message,
			Detail:  f.Detail,
		}
	}

	return view
}

func fromCustomSelection(c *domain.CustomSelection) *CustomSelectionView {
	view := &CustomSelectionView{
		Activities: []ActivityResponse{},
		Services:   []ServiceResponse{},
	}
	if c == nil {
		return view
	}

	if c.Dates != nil {
		if !c.Dates.Start.IsZero() {
			view.CheckIn = c.Dates.Start.String()
		}
		if !c.Dates.End.IsZero() {
			view.CheckOut = c.Dates.End.String()
		}
		if nights, err := pricing.Nights(*c.Dates); err == nil {
			view.Nights = nights
		}
	}
	view.Accommodation = FromDomainAccommodation(c.Accommodation)
	for _, a := range c.Activities {
		view.Activities = append(view.Activities, FromDomainActivity(a))
	}
	for _, s := range c.Services {
		view.Services = append(view.Services, FromDomainService(s))
	}
	return view
}

func fromBreakdown(b pricing.Breakdown) *TotalView {
	return &TotalView{
		Nights:        b.Nights,
		Accommodation: b.Accommodation,
		Activities:    b.Activities,
		Services:      b.Services,
		Total:         b.Total,
	}
}
