package start_booking

import (
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
	startBooking "github.com/m04kA/DMar-BookingService/internal/usecase/start_booking"
)

// StartBookingResponse HTTP response model: каталог и начальное состояние мастера
type StartBookingResponse struct {
	Catalog *models.CatalogResponse `json:"catalog"`
	Wizard  *models.WizardView      `json:"wizard"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startBooking.Response) *StartBookingResponse {
	return &StartBookingResponse{
		Catalog: models.FromDomainCatalog(resp.Catalog),
		Wizard:  resp.Wizard,
	}
}
