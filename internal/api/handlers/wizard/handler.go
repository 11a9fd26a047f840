package wizard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
	"github.com/m04kA/DMar-BookingService/internal/service/booking"
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid id"
	msgNotStarted         = "booking flow not started"
	msgInvalidInput       = "invalid input data"
	msgNotFound           = "item not found in catalog"
	msgUnavailable        = "package is sold out"
	msgStepIncomplete     = "cannot continue: current step is incomplete"
	msgConflict           = "operation not allowed at this step"
)

// ErrorResponse ошибка действия мастера вместе с его неизменным состоянием
type ErrorResponse struct {
	Error  string             `json:"error"`
	Wizard *models.WizardView `json:"wizard,omitempty"`
}

// Handler обрабатывает действия пользователя над мастером бронирования
type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// View GET /api/v1/wizard
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(r)
	view, err := h.service.View(sessionID)
	h.respond(w, "GET /wizard", sessionID, view, err)
}

// SelectMode PUT /api/v1/wizard/mode
func (h *Handler) SelectMode(w http.ResponseWriter, r *http.Request) {
	var req models.SelectModeRequest
	if !h.decode(w, r, "PUT /wizard/mode", &req) {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.SelectMode(sessionID, &req)
	h.respond(w, "PUT /wizard/mode", sessionID, view, err)
}

// ChoosePackage PUT /api/v1/wizard/package
func (h *Handler) ChoosePackage(w http.ResponseWriter, r *http.Request) {
	var req models.ChoosePackageRequest
	if !h.decode(w, r, "PUT /wizard/package", &req) {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.ChoosePackage(sessionID, &req)
	h.respond(w, "PUT /wizard/package", sessionID, view, err)
}

// SetDates PUT /api/v1/wizard/dates
func (h *Handler) SetDates(w http.ResponseWriter, r *http.Request) {
	var req models.SetDatesRequest
	if !h.decode(w, r, "PUT /wizard/dates", &req) {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.SetDates(sessionID, &req)
	h.respond(w, "PUT /wizard/dates", sessionID, view, err)
}

// ChooseAccommodation PUT /api/v1/wizard/accommodation
func (h *Handler) ChooseAccommodation(w http.ResponseWriter, r *http.Request) {
	var req models.ChooseAccommodationRequest
	if !h.decode(w, r, "PUT /wizard/accommodation", &req) {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.ChooseAccommodation(sessionID, &req)
	h.respond(w, "PUT /wizard/accommodation", sessionID, view, err)
}

// ToggleActivity POST /api/v1/wizard/activities/{id}/toggle
func (h *Handler) ToggleActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "POST /wizard/activities/{id}/toggle")
	if !ok {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.ToggleActivity(sessionID, id)
	h.respond(w, "POST /wizard/activities/{id}/toggle", sessionID, view, err)
}

// ToggleService POST /api/v1/wizard/services/{id}/toggle
func (h *Handler) ToggleService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "POST /wizard/services/{id}/toggle")
	if !ok {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.ToggleService(sessionID, id)
	h.respond(w, "POST /wizard/services/{id}/toggle", sessionID, view, err)
}

// SetGuests PUT /api/v1/wizard/guests
func (h *Handler) SetGuests(w http.ResponseWriter, r *http.Request) {
	var req models.SetGuestsRequest
	if !h.decode(w, r, "PUT /wizard/guests", &req) {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.SetGuests(sessionID, &req)
	h.respond(w, "PUT /wizard/guests", sessionID, view, err)
}

// SetCustomer PUT /api/v1/wizard/customer
func (h *Handler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if !h.decode(w, r, "PUT /wizard/customer", &req) {
		return
	}
	sessionID := h.sessionID(r)
	view, err := h.service.SetCustomer(sessionID, &req)
	h.respond(w, "PUT /wizard/customer", sessionID, view, err)
}

// Next POST /api/v1/wizard/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(r)
	view, err := h.service.Next(sessionID)
	h.respond(w, "POST /wizard/next", sessionID, view, err)
}

// Back POST /api/v1/wizard/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(r)
	view, err := h.service.Back(sessionID)
	h.respond(w, "POST /wizard/back", sessionID, view, err)
}

func (h *Handler) sessionID(r *http.Request) string {
	sessionID, _ := middleware.GetSessionID(r.Context())
	return sessionID
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, v interface{}) bool {
	if err := handlers.DecodeJSON(r, v); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("%s - Invalid id: %s", route, mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}

// respond отправляет состояние мастера; при отказе состояние прикладывается к ошибке
func (h *Handler) respond(w http.ResponseWriter, route, sessionID string, view *models.WizardView, err error) {
	if err == nil {
		handlers.RespondJSON(w, http.StatusOK, view)
		return
	}

	var (
		status int
		msg    string
	)
	switch {
	case errors.Is(err, booking.ErrNotStarted):
		h.logger.Warn("%s - Booking flow not started: session=%s", route, sessionID)
		status, msg = http.StatusNotFound, msgNotStarted

	case errors.Is(err, booking.ErrTransitionRefused):
		h.logger.Warn("%s - Step incomplete: session=%s", route, sessionID)
		status, msg = http.StatusConflict, msgStepIncomplete

	case errors.Is(err, booking.ErrNotFound):
		h.logger.Warn("%s - Unknown item: session=%s, error=%v", route, sessionID, err)
		status, msg = http.StatusNotFound, msgNotFound

	case errors.Is(err, booking.ErrUnavailable):
		h.logger.Warn("%s - Package unavailable: session=%s", route, sessionID)
		status, msg = http.StatusConflict, msgUnavailable

	case errors.Is(err, booking.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: session=%s, error=%v", route, sessionID, err)
		status, msg = http.StatusBadRequest, msgInvalidInput

	case errors.Is(err, booking.ErrConflict):
		h.logger.Warn("%s - Not allowed in current state: session=%s, error=%v", route, sessionID, err)
		status, msg = http.StatusConflict, msgConflict

	default:
		h.logger.Error("%s - Wizard action failed: session=%s, error=%v", route, sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, status, ErrorResponse{Error: msg, Wizard: view})
}
