package get_booking_history

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
)

type HistoryService interface {
	History(ctx context.Context, sessionID string) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
