package get_catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/api/middleware"
	"github.com/m04kA/DMar-BookingService/internal/service/booking/models"
	loadCatalog "github.com/m04kA/DMar-BookingService/internal/usecase/load_catalog"
)

const (
	msgCatalogUnavailable = "catalog is temporarily unavailable, please try again"
)

type Handler struct {
	useCase   LoadCatalogUseCase
	languages LanguageProvider
	logger    Logger
}

func NewHandler(useCase LoadCatalogUseCase, languages LanguageProvider, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		languages: languages,
		logger:    logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		sessionID, _ := middleware.GetSessionID(r.Context())
		lang = h.languages.Language(sessionID)
	}

	catalog, err := h.useCase.Execute(r.Context(), &loadCatalog.Request{Language: lang})
	if err != nil {
		switch {
		case errors.Is(err, loadCatalog.ErrCatalogFetch):
			h.logger.Warn("GET /catalog - Catalog fetch failed: %v", err)
			handlers.RespondRetryable(w, msgCatalogUnavailable)
		default:
			h.logger.Error("GET /catalog - Failed to load catalog: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := models.FromDomainCatalog(catalog)

	h.logger.Info("GET /catalog - Catalog loaded: packages=%d, accommodations=%d, activities=%d, services=%d",
		len(catalog.Packages), len(catalog.Accommodations), len(catalog.Activities), len(catalog.Services))
	handlers.RespondJSON(w, http.StatusOK, response)
}
