package load_catalog

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
)

// CatalogClient интерфейс клиента каталога
type CatalogClient interface {
	GetPackages(ctx context.Context, filter backend.PackageFilter) ([]domain.Package, error)
	GetHotels(ctx context.Context, filter backend.AccommodationFilter) ([]domain.Accommodation, error)
	GetResorts(ctx context.Context, filter backend.AccommodationFilter) ([]domain.Accommodation, error)
	GetActivities(ctx context.Context) ([]domain.Activity, error)
	GetServices(ctx context.Context) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
