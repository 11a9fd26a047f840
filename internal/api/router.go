package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers/get_booking_history"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/get_catalog"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/get_order"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/get_service_content"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/get_translations"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/set_language"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/start_booking"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/submit_booking"
	"github.com/m04kA/DMar-BookingService/internal/api/handlers/wizard"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
)

// Handlers набор HTTP обработчиков сервиса
type Handlers struct {
	GetCatalog        *get_catalog.Handler
	GetServiceContent *get_service_content.Handler
	GetTranslations   *get_translations.Handler
	SetLanguage       *set_language.Handler
	StartBooking      *start_booking.Handler
	Wizard            *wizard.Handler
	SubmitBooking     *submit_booking.Handler
	GetHistory        *get_booking_history.Handler
	GetOrder          *get_order.Handler
}

// RouterOptions дополнительные параметры маршрутизатора
type RouterOptions struct {
	// Metrics записывает метрики HTTP запросов; nil отключает middleware
	Metrics middleware.HTTPRecorder
	// MetricsPath путь prometheus handler; пустой путь не регистрируется
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter создает маршрутизатор с API v1
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	if opts.MetricsPath != "" && opts.MetricsHandler != nil {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session)

	// Каталог и контент
	api.HandleFunc("/catalog", h.GetCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/service-content/{slug}", h.GetServiceContent.Handle).Methods(http.MethodGet)
	api.HandleFunc("/translations", h.GetTranslations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/language", h.SetLanguage.Handle).Methods(http.MethodPut)

	// Мастер бронирования
	api.HandleFunc("/wizard", h.StartBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard", h.Wizard.View).Methods(http.MethodGet)
	api.HandleFunc("/wizard/mode", h.Wizard.SelectMode).Methods(http.MethodPut)
	api.HandleFunc("/wizard/package", h.Wizard.ChoosePackage).Methods(http.MethodPut)
	api.HandleFunc("/wizard/dates", h.Wizard.SetDates).Methods(http.MethodPut)
	api.HandleFunc("/wizard/accommodation", h.Wizard.ChooseAccommodation).Methods(http.MethodPut)
	api.HandleFunc("/wizard/activities/{id}/toggle", h.Wizard.ToggleActivity).Methods(http.MethodPost)
	api.HandleFunc("/wizard/services/{id}/toggle", h.Wizard.ToggleService).Methods(http.MethodPost)
	api.HandleFunc("/wizard/guests", h.Wizard.SetGuests).Methods(http.MethodPut)
	api.HandleFunc("/wizard/customer", h.Wizard.SetCustomer).Methods(http.MethodPut)
	api.HandleFunc("/wizard/next", h.Wizard.Next).Methods(http.MethodPost)
	api.HandleFunc("/wizard/back", h.Wizard.Back).Methods(http.MethodPost)
	api.HandleFunc("/wizard/submit", h.SubmitBooking.Handle).Methods(http.MethodPost)

	// Бронирования
	api.HandleFunc("/bookings/history", h.GetHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders/{orderNumber}", h.GetOrder.Handle).Methods(http.MethodGet)

	return r
}
