package set_language

import (
	"net/http"
	"strings"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgLanguageRequired   = "language is required"
)

// LanguageRequest запрос смены языка
type LanguageRequest struct {
	Language string `json:"language"`
}

// LanguageResponse примененный язык (неподдерживаемый заменяется языком по умолчанию)
type LanguageResponse struct {
	Language string `json:"language"`
}

type Handler struct {
	service LanguageService
	logger  Logger
}

func NewHandler(service LanguageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/session/language
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LanguageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session/language - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if strings.TrimSpace(req.Language) == "" {
		handlers.RespondBadRequest(w, msgLanguageRequired)
		return
	}

	sessionID, _ := middleware.GetSessionID(r.Context())
	applied := h.service.SetLanguage(sessionID, req.Language)

	handlers.RespondJSON(w, http.StatusOK, LanguageResponse{Language: applied})
}
