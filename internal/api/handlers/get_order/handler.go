package get_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/service/booking"
)

const (
	msgInvalidOrderNumber = "invalid order number"
	msgNotFound           = "order not found"
	msgBackendUnavailable = "order service is temporarily unavailable, please try again"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/{orderNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]

	order, err := h.service.Order(r.Context(), orderNumber)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidOrderNumber)

		case errors.Is(err, booking.ErrNotFound):
			h.logger.Warn("GET /orders/{orderNumber} - Order not found: order=%s", orderNumber)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, booking.ErrBackendUnavailable):
			h.logger.Warn("GET /orders/{orderNumber} - Backend unavailable: order=%s", orderNumber)
			handlers.RespondRetryable(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /orders/{orderNumber} - Failed to get order: order=%s, error=%v", orderNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orders/{orderNumber} - Order served: order=%s", orderNumber)
	handlers.RespondJSON(w, http.StatusOK, order)
}
