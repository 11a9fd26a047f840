package start_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
	loadCatalog "github.com/m04kA/DMar-BookingService/internal/usecase/load_catalog"
	startBooking "github.com/m04kA/DMar-BookingService/internal/usecase/start_booking"
)

const (
	msgMissingSession     = "missing session id"
	msgCatalogUnavailable = "catalog is temporarily unavailable, please try again"
	msgSuperseded         = "a newer booking flow was started in this session"
	msgSubmitting         = "booking is already being submitted"
)

type Handler struct {
	useCase StartBookingUseCase
	logger  Logger
}

func NewHandler(useCase StartBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &startBooking.Request{
		SessionID: sessionID,
		Language:  r.URL.Query().Get("lang"),
	})
	if err != nil {
		switch {
		case errors.Is(err, loadCatalog.ErrCatalogFetch):
			h.logger.Warn("POST /wizard - Catalog fetch failed: session=%s, error=%v", sessionID, err)
			handlers.RespondRetryable(w, msgCatalogUnavailable)

		case errors.Is(err, startBooking.ErrSuperseded):
			h.logger.Warn("POST /wizard - Superseded: session=%s", sessionID)
			handlers.RespondConflict(w, msgSuperseded)

		case errors.Is(err, startBooking.ErrSubmissionInProgress):
			h.logger.Warn("POST /wizard - Submission in progress: session=%s", sessionID)
			handlers.RespondConflict(w, msgSubmitting)

		case errors.Is(err, startBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("POST /wizard - Failed to start booking: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard - Booking flow started: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
