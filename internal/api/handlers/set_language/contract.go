package set_language

type LanguageService interface {
	SetLanguage(sessionID, lang string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
