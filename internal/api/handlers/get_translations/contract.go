package get_translations

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/service/translations"
)

type TranslationService interface {
	Load(ctx context.Context, lang string) *translations.Translator
}

type LanguageProvider interface {
	Language(sessionID string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
