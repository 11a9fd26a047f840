package domain

// Booking defaults
const (
	DefaultGuests = 2
	MinGuests     = 1
	MaxGuests     = 50
)

// HistoryStatusConfirmed status of history records created after a successful submission
const HistoryStatusConfirmed = "confirmed"

// ReferencePrefix prefix of locally generated booking references
const ReferencePrefix = "DMR"

// Languages supported by the translations backend
const (
	LanguageEnglish = "en"
	LanguageSpanish = "es"
	LanguageGerman  = "de"
)

// Service content page slugs
var ServiceContentSlugs = []string{"diving", "fishing", "excursions"}
