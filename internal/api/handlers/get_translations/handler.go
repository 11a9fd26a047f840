package get_translations

import (
	"net/http"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
)

// TranslationsResponse таблица переводов для языка
type TranslationsResponse struct {
	Language     string            `json:"language"`
	Translations map[string]string `json:"translations"`
}

type Handler struct {
	service   TranslationService
	languages LanguageProvider
	logger    Logger
}

func NewHandler(service TranslationService, languages LanguageProvider, logger Logger) *Handler {
	return &Handler{
		service:   service,
		languages: languages,
		logger:    logger,
	}
}

// Handle GET /api/v1/translations
// Ошибка загрузки не является ошибкой запроса: отдается пустая таблица, клиент показывает ключи.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		sessionID, _ := middleware.GetSessionID(r.Context())
		lang = h.languages.Language(sessionID)
	}

	translator := h.service.Load(r.Context(), lang)

	h.logger.Info("GET /translations - Translations served: language=%s", translator.Language())
	handlers.RespondJSON(w, http.StatusOK, TranslationsResponse{
		Language:     translator.Language(),
		Translations: translator.Table(),
	})
}
