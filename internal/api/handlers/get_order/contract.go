package get_order

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
)

type OrderService interface {
	Order(ctx context.Context, orderNumber string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
