package booking

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
)

// SessionStore реестр сессий посетителей
type SessionStore interface {
	GetOrCreate(id string) *sessions.Session
	Get(id string) (*sessions.Session, error)
}

// HistoryRepository локальная история бронирований
type HistoryRepository interface {
	List(ctx context.Context, sessionID string) ([]domain.HistoryRecord, error)
}

// OrderClient интерфейс клиента заказов бэкенда
type OrderClient interface {
	GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error)
}

// LanguageNormalizer приводит язык к поддерживаемому
type LanguageNormalizer interface {
	Normalize(lang string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
