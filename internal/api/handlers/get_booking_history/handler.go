package get_booking_history

import (
	"net/http"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
)

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	history, err := h.service.History(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /bookings/history - Failed to get history: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/history - History served: session=%s, count=%d", sessionID, len(history.Bookings))
	handlers.RespondJSON(w, http.StatusOK, history)
}
