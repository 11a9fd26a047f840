package translations

import (
	"context"
	"strings"
)

// Service загружает таблицы переводов для поддерживаемых языков
type Service struct {
	source          Source
	defaultLanguage string
	supported       map[string]struct{}
	logger          Logger
}

// NewService создает новый экземпляр сервиса переводов
func NewService(source Source, defaultLanguage string, supported []string, logger Logger) *Service {
	set := make(map[string]struct{}, len(supported))
	for _, lang := range supported {
		set[strings.ToLower(lang)] = struct{}{}
	}
	return &Service{
		source:          source,
		defaultLanguage: defaultLanguage,
		supported:       set,
		logger:          logger,
	}
}

// Normalize приводит язык к поддерживаемому коду: "ES-mx" -> "es".
// Неизвестный язык заменяется языком по умолчанию.
func (s *Service) Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if _, ok := s.supported[lang]; ok {
		return lang
	}
	return s.defaultLanguage
}

// IsSupported проверяет, поддерживается ли язык (без нормализации к умолчанию)
func (s *Service) IsSupported(lang string) bool {
	_, ok := s.supported[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// Load загружает таблицу языка. Ошибка загрузки не фатальна:
// возвращается пустая таблица, и каждый ключ отображается как есть.
func (s *Service) Load(ctx context.Context, lang string) *Translator {
	lang = s.Normalize(lang)

	table, err := s.source.GetTranslations(ctx, lang)
	if err != nil {
		s.logger.Warn("Load: failed to fetch translations for lang=%s, falling back to keys: %v", lang, err)
		return NewTranslator(lang, nil)
	}

	s.logger.Info("Load: loaded %d translations for lang=%s", len(table), lang)
	return NewTranslator(lang, table)
}
