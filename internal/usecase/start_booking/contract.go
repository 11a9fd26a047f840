package start_booking

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
	"github.com/m04kA/DMar-BookingService/internal/service/wizard"
	"github.com/m04kA/DMar-BookingService/internal/usecase/load_catalog"
)

// CatalogLoader загрузка каталога
type CatalogLoader interface {
	Execute(ctx context.Context, req *load_catalog.Request) (*domain.Catalog, error)
}

// SessionStore реестр сессий
type SessionStore interface {
	GetOrCreate(id string) *sessions.Session
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider = wizard.TimeProvider

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
