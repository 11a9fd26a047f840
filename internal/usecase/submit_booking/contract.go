package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/DMar-BookingService/internal/domain"
	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
	"github.com/m04kA/DMar-BookingService/internal/service/sessions"
)

// SessionStore реестр сессий
type SessionStore interface {
	Get(id string) (*sessions.Session, error)
}

// BookingClient интерфейс клиента бэкенда для создания бронирований
type BookingClient interface {
	CreateBooking(ctx context.Context, req backend.BookingRequest) (*backend.BookingResult, error)
}

// HistoryRepository локальная история бронирований
type HistoryRepository interface {
	Append(ctx context.Context, sessionID string, record domain.HistoryRecord) error
}

// Metrics интерфейс метрик отправки
type Metrics interface {
	RecordSubmission(bookingType, outcome string)
	RecordHistoryWriteFailure()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
