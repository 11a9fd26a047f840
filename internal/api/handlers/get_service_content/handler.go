package get_service_content

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMar-BookingService/internal/api/handlers"
	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
)

const (
	msgUnknownPage        = "page not found"
	msgContentUnavailable = "page content is temporarily unavailable, please try again"
)

type Handler struct {
	client ContentClient
	logger Logger
}

func NewHandler(client ContentClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/service-content/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(mux.Vars(r)["slug"])
	if !slices.Contains(domain.ServiceContentSlugs, slug) {
		h.logger.Warn("GET /service-content/{slug} - Unknown page: slug=%s", slug)
		handlers.RespondNotFound(w, msgUnknownPage)
		return
	}

	content, err := h.client.GetServiceContent(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrNotFound):
			h.logger.Warn("GET /service-content/{slug} - Content not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgUnknownPage)
		case errors.Is(err, backend.ErrConnectivity), errors.Is(err, backend.ErrInvalidResponse):
			h.logger.Warn("GET /service-content/{slug} - Backend unavailable: slug=%s, error=%v", slug, err)
			handlers.RespondRetryable(w, msgContentUnavailable)
		default:
			h.logger.Error("GET /service-content/{slug} - Failed to get content: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /service-content/{slug} - Content served: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, content.Payload)
}
