package load_catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
)

// UseCase use case для загрузки каталога одного сценария бронирования
type UseCase struct {
	client CatalogClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute параллельно загружает пакеты, отели, курорты, активности и услуги.
// Первая ошибка отменяет остальные запросы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Catalog, error) {
	uc.logger.Info("LoadCatalog: language=%s", req.Language)

	var (
		packages   []domain.Package
		hotels     []domain.Accommodation
		resorts    []domain.Accommodation
		activities []domain.Activity
		services   []domain.Service
	)

	accFilter := backend.AccommodationFilter{Locale: req.Language}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		packages, err = uc.client.GetPackages(gctx, backend.PackageFilter{})
		return wrap("packages", err)
	})
	g.Go(func() (err error) {
		hotels, err = uc.client.GetHotels(gctx, accFilter)
		return wrap("hotels", err)
	})
	g.Go(func() (err error) {
		resorts, err = uc.client.GetResorts(gctx, accFilter)
		return wrap("resorts", err)
	})
	g.Go(func() (err error) {
		activities, err = uc.client.GetActivities(gctx)
		return wrap("activities", err)
	})
	g.Go(func() (err error) {
		services, err = uc.client.GetServices(gctx)
		return wrap("services", err)
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("LoadCatalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetch, err)
	}

	catalog := &domain.Catalog{
		Packages:       packages,
		Accommodations: make([]domain.Accommodation, 0, len(hotels)+len(resorts)),
		Activities:     activities,
		Services:       services,
	}
	catalog.Accommodations = append(catalog.Accommodations, hotels...)
	catalog.Accommodations = append(catalog.Accommodations, resorts...)

	uc.logger.Info("LoadCatalog: loaded packages=%d, hotels=%d, resorts=%d, activities=%d, services=%d",
		len(packages), len(hotels), len(resorts), len(activities), len(services))
	return catalog, nil
}

func wrap(part string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", part, err)
}
