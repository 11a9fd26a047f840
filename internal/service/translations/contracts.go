package translations

import "context"

// Source источник таблиц переводов (бэкенд)
type Source interface {
	GetTranslations(ctx context.Context, locale string) (map[string]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
