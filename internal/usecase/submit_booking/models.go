package submit_booking

import "github.com/m04kA/DMar-BookingService/internal/service/booking/models"

// Request модель запроса на отправку бронирования
type Request struct {
	SessionID string
}

// Response состояние мастера после отправки: confirmed или submission_failed
type Response struct {
	Wizard    *models.WizardView
	Reference string // номер заказа или локальная ссылка; пусто при неуспехе
}
