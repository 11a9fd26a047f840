package get_catalog

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	loadCatalog "github.com/m04kA/DMar-BookingService/internal/usecase/load_catalog"
)

type LoadCatalogUseCase interface {
	Execute(ctx context.Context, req *loadCatalog.Request) (*domain.Catalog, error)
}

type LanguageProvider interface {
	Language(sessionID string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
