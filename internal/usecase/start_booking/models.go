package start_booking

import (
	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
)

// Request модель запроса на запуск сценария бронирования
type Request struct {
	SessionID string
	Language  string // пусто = язык сессии
}

// Response каталог нового сценария и начальное состояние мастера
type Response struct {
	Catalog *domain.Catalog
	Wizard  *models.WizardView
}
