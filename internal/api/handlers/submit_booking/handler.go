package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
	submitBooking "github.com/m04kA/DMar-BookingService/internal/usecase/submit_booking"
)

const (
	msgNotStarted           = "booking flow not started"
	msgSubmissionInProgress = "booking is already being submitted"
	msgCustomerIncomplete   = "customer name, email and phone are required"
	msgInvalidState         = "booking cannot be submitted at this step"
)

// SubmitBookingResponse HTTP response model.
// Неуспешная отправка не является ошибкой запроса: состояние submission_failed несет причину.
type SubmitBookingResponse struct {
	Reference string             `json:"reference,omitempty"`
	Wizard    *models.WizardView `json:"wizard"`
}

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrNotStarted):
			h.logger.Warn("POST /wizard/submit - Booking flow not started: session=%s", sessionID)
			handlers.RespondNotFound(w, msgNotStarted)

		case errors.Is(err, submitBooking.ErrSubmissionInProgress):
			h.logger.Warn("POST /wizard/submit - Submission in progress: session=%s", sessionID)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /wizard/submit - Customer details incomplete: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgCustomerIncomplete)

		case errors.Is(err, submitBooking.ErrInvalidState):
			h.logger.Warn("POST /wizard/submit - Invalid state: session=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgInvalidState)

		default:
			h.logger.Error("POST /wizard/submit - Failed to submit booking: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/submit - Submission finished: session=%s, state=%s, reference=%s",
		sessionID, result.Wizard.State, result.Reference)
	handlers.RespondJSON(w, http.StatusOK, SubmitBookingResponse{
		Reference: result.Reference,
		Wizard:    result.Wizard,
	})
}
